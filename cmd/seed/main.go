// Command seed creates the default categories, and optionally a personal
// copy of them for one user.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"budgetscope/internal/category"
	categoryStore "budgetscope/internal/category/store"
	"budgetscope/internal/config"
	"budgetscope/internal/database"
)

func main() {
	ownerFlag := flag.String("owner", "", "also seed personal categories for this user id")
	flag.Parse()

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

	svc := category.NewService(categoryStore.New(db))
	ctx := context.Background()

	if err := svc.EnsureDefaults(ctx, category.DefaultIncomeNames, category.DefaultExpenseNames); err != nil {
		slog.Error("failed to seed default categories", "error", err)
		os.Exit(1)
	}

	slog.Info("seeded default categories")

	if *ownerFlag != "" {
		owner, err := uuid.Parse(*ownerFlag)
		if err != nil {
			slog.Error("invalid owner id", "error", err)
			os.Exit(1)
		}

		if err := svc.EnsureForOwner(ctx, owner, category.DefaultIncomeNames, category.DefaultExpenseNames); err != nil {
			slog.Error("failed to seed owner categories", "error", err)
			os.Exit(1)
		}

		slog.Info("seeded owner categories", "owner", owner)
	}
}
