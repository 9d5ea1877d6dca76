package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"budgetscope/internal/categorize"
	"budgetscope/internal/http/owner"
	"budgetscope/internal/importer"
	"budgetscope/internal/money"
	"budgetscope/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
	catSvc    *categorize.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, catSvc *categorize.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
		catSvc:    catSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Amount      string           `json:"amount"`
	Type        transaction.Type `json:"type"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	CreatedAt   time.Time        `json:"created_at"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

type createParamsDTO struct {
	Amount      string           `json:"amount"`
	Type        transaction.Type `json:"type"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

type conflictDTO struct {
	Incoming createParamsDTO     `json:"incoming"`
	Existing transactionResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []createParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	Params []createParamsDTO `json:"params"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ownerID := owner.FromContext(r.Context())

	for i, p := range params {
		params[i].OwnerID = ownerID

		suggested, err := h.catSvc.Suggest(r.Context(), ownerID, p.Description)
		if err != nil || suggested == uuid.Nil {
			continue
		}

		params[i].CategoryID = &suggested
	}

	result, err := h.txSvc.ImportBatch(r.Context(), ownerID, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]createParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toTxResponse(c.Existing),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(result.Imported)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ownerID := owner.FromContext(r.Context())

	params := make([]transaction.CreateParams, 0, len(req.Params))

	for _, p := range req.Params {
		amount, err := money.Parse(p.Amount)
		if err != nil || amount < 0 {
			http.Error(w, "invalid amount", http.StatusBadRequest)
			return
		}

		if !p.Type.Valid() {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params = append(params, transaction.CreateParams{
			OwnerID:     ownerID,
			Amount:      amount,
			Type:        p.Type,
			CategoryID:  p.CategoryID,
			Description: p.Description,
			Date:        date,
		})
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), ownerID, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(txs []*transaction.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, toTxResponse(tx))
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}

func toTxResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Amount:      money.Format(tx.Amount),
		Type:        tx.Type,
		CategoryID:  tx.CategoryID,
		Description: tx.Description,
		Date:        tx.Date.Format(time.DateOnly),
		CreatedAt:   tx.CreatedAt,
	}
}

func toParamsDTO(p transaction.CreateParams) createParamsDTO {
	return createParamsDTO{
		Amount:      money.Format(p.Amount),
		Type:        p.Type,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Date:        p.Date.Format(time.DateOnly),
	}
}
