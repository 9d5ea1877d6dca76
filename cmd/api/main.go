package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"budgetscope/internal/budget"
	budgetStore "budgetscope/internal/budget/store"
	"budgetscope/internal/categorize"
	categorizeStore "budgetscope/internal/categorize/store"
	"budgetscope/internal/category"
	categoryStore "budgetscope/internal/category/store"
	"budgetscope/internal/config"
	"budgetscope/internal/dashboard"
	"budgetscope/internal/database"
	"budgetscope/internal/export"
	apiHttp "budgetscope/internal/http"
	budgetHandler "budgetscope/internal/http/budget"
	categoryHandler "budgetscope/internal/http/category"
	dashboardHandler "budgetscope/internal/http/dashboard"
	exportHandler "budgetscope/internal/http/export"
	importHandler "budgetscope/internal/http/importcsv"
	rulesHandler "budgetscope/internal/http/rules"
	summaryHandler "budgetscope/internal/http/summary"
	txHandler "budgetscope/internal/http/transaction"
	"budgetscope/internal/importer"
	"budgetscope/internal/summary"
	"budgetscope/internal/transaction"
	txStore "budgetscope/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.ConnectionString()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactions := txStore.New(db)

	var (
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(transactions)
		budgetService      = budget.NewService(budgetStore.New(db), transactions)
		summaryService     = summary.NewService(transactions, time.Now)
		dashboardService   = dashboard.NewService(summaryService, transactionService, budgetService, time.Now)
		categorizeService  = categorize.NewService(categorizeStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
	)

	var (
		categoryH    = categoryHandler.NewHandler(categoryService)
		transactionH = txHandler.NewHandler(transactionService)
		budgetH      = budgetHandler.NewHandler(budgetService, time.Now)
		summaryH     = summaryHandler.NewHandler(summaryService)
		dashboardH   = dashboardHandler.NewHandler(dashboardService)
		importH      = importHandler.NewHandler(importService, transactionService, categorizeService)
		rulesH       = rulesHandler.NewHandler(categorizeService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := apiHttp.New(categoryH, transactionH, budgetH, summaryH, dashboardH, importH, rulesH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
