package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"budgetscope/cmd/tui/internal/view"
	"budgetscope/internal/budget"
	budgetStore "budgetscope/internal/budget/store"
	"budgetscope/internal/category"
	categoryStore "budgetscope/internal/category/store"
	"budgetscope/internal/config"
	"budgetscope/internal/dashboard"
	"budgetscope/internal/database"
	"budgetscope/internal/importer"
	"budgetscope/internal/summary"
	"budgetscope/internal/transaction"
	txStore "budgetscope/internal/transaction/store"
)

type model struct {
	txService        *transaction.Service
	catService       *category.Service
	importService    *importer.Service
	dashboardService *dashboard.Service
	owner            uuid.UUID

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	importView       view.ImportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewImport       View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	owner, err := uuid.Parse(cfg.Owner.ID)
	if err != nil {
		slog.Error("OWNER_ID must be set to a valid uuid", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	transactions := txStore.New(db)

	txSvc := transaction.NewService(transactions)
	catSvc := category.NewService(categoryStore.New(db))
	budgetSvc := budget.NewService(budgetStore.New(db), transactions)
	summarySvc := summary.NewService(transactions, time.Now)
	dashSvc := dashboard.NewService(summarySvc, txSvc, budgetSvc, time.Now)
	impSvc := importer.NewService()

	return model{
		txService:        txSvc,
		catService:       catSvc,
		importService:    impSvc,
		dashboardService: dashSvc,
		owner:            owner,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(dashSvc, owner),
		transactionsView: view.NewTransactionsModel(txSvc, catSvc, owner),
		importView:       view.NewImportModel(txSvc, impSvc, owner),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.dashboardService, m.owner)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.catService, m.owner)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService, m.owner)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"BudgetScope TUI\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"3. Import Statement\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
