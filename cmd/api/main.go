package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/padraigob/resold/internal/config"
	"github.com/padraigob/resold/internal/database"
	"github.com/padraigob/resold/internal/export"
	resoldHttp "github.com/padraigob/resold/internal/http"
	exportHandler "github.com/padraigob/resold/internal/http/export"
	importHandler "github.com/padraigob/resold/internal/http/importcsv"
	itemHandler "github.com/padraigob/resold/internal/http/item"
	lotHandler "github.com/padraigob/resold/internal/http/lot"
	reportHandler "github.com/padraigob/resold/internal/http/report"
	"github.com/padraigob/resold/internal/importer"
	"github.com/padraigob/resold/internal/item"
	itemStore "github.com/padraigob/resold/internal/item/store"
	"github.com/padraigob/resold/internal/lot"
	lotStore "github.com/padraigob/resold/internal/lot/store"
	"github.com/padraigob/resold/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		itemService   = item.NewService(itemStore.New(db), cfg.Sales.RequireListedMarketplace)
		lotService    = lot.NewService(lotStore.New(db))
		importService = importer.NewService()
		exportService = export.NewService(itemService)
		reportService = report.NewService(itemService)
	)

	var (
		itemH   = itemHandler.NewHandler(itemService)
		lotH    = lotHandler.NewHandler(lotService)
		importH = importHandler.NewHandler(importService, itemService)
		exportH = exportHandler.NewHandler(exportService)
		reportH = reportHandler.NewHandler(reportService)
	)

	router := resoldHttp.New(itemH, lotH, importH, exportH, reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
