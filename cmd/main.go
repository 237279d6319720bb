package main

import (
	"context"
	"log"
	"os"

	"github.com/eliox01/bookMarking/cmd/controllers"
	"github.com/eliox01/bookMarking/internal/config"
	"github.com/eliox01/bookMarking/internal/repo"
	"github.com/eliox01/bookMarking/internal/services"
	"github.com/eliox01/bookMarking/internal/sheets"

	"github.com/gin-gonic/gin"
)

const defaultConfigPath = "secrets.json"

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := repo.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	if err := repo.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	sheetClient, err := sheets.NewClient(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID, cfg.Worksheet, "")
	if err != nil {
		log.Fatalf("open spreadsheet: %v", err)
	}

	logService, err := services.NewLogService(db)
	if err != nil {
		log.Fatalf("create log service: %v", err)
	}

	bookmarkService, err := services.NewBookmarkService(sheetClient, logService)
	if err != nil {
		log.Fatalf("create bookmark service: %v", err)
	}

	xlsxService, err := services.NewXlsxService()
	if err != nil {
		log.Fatalf("create xlsx service: %v", err)
	}

	transferService, err := services.NewTransferService(bookmarkService, xlsxService, logService)
	if err != nil {
		log.Fatalf("create transfer service: %v", err)
	}

	pageService, err := services.NewPageService(nil)
	if err != nil {
		log.Fatalf("create page service: %v", err)
	}

	bookmarksController, err := controllers.NewBookmarksController(bookmarkService)
	if err != nil {
		log.Fatalf("create bookmarks controller: %v", err)
	}

	dashboardController, err := controllers.NewDashboardController(bookmarkService)
	if err != nil {
		log.Fatalf("create dashboard controller: %v", err)
	}

	transferController, err := controllers.NewTransferController(transferService)
	if err != nil {
		log.Fatalf("create transfer controller: %v", err)
	}

	peekController, err := controllers.NewPeekController(pageService)
	if err != nil {
		log.Fatalf("create peek controller: %v", err)
	}

	logsController, err := controllers.NewLogsController(logService)
	if err != nil {
		log.Fatalf("create logs controller: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if err := controllers.RegisterHealthRoutes(router); err != nil {
		log.Fatalf("register health routes: %v", err)
	}
	if err := bookmarksController.RegisterRoutes(router); err != nil {
		log.Fatalf("register bookmarks routes: %v", err)
	}
	if err := dashboardController.RegisterRoutes(router); err != nil {
		log.Fatalf("register dashboard routes: %v", err)
	}
	if err := transferController.RegisterRoutes(router); err != nil {
		log.Fatalf("register transfer routes: %v", err)
	}
	if err := peekController.RegisterRoutes(router); err != nil {
		log.Fatalf("register peek routes: %v", err)
	}
	if err := logsController.RegisterRoutes(router); err != nil {
		log.Fatalf("register logs routes: %v", err)
	}

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
