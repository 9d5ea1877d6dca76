package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"budgetscope/internal/http/budget"
	"budgetscope/internal/http/category"
	"budgetscope/internal/http/dashboard"
	"budgetscope/internal/http/export"
	"budgetscope/internal/http/importcsv"
	"budgetscope/internal/http/owner"
	"budgetscope/internal/http/rules"
	"budgetscope/internal/http/summary"
	"budgetscope/internal/http/transaction"
)

func New(
	categoriesV1 *category.Handler,
	transactionsV1 *transaction.Handler,
	budgetsV1 *budget.Handler,
	summaryV1 *summary.Handler,
	dashboardV1 *dashboard.Handler,
	importV1 *importcsv.Handler,
	rulesV1 *rules.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", owner.Header},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(owner.Require)

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/summary", summaryV1.Routes)
		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/rules", func(r chi.Router) {
			rulesV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
