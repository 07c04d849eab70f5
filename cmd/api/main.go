package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/config"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/infrastructure/memory"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/handler"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/routes"
	"github.com/karibugroceries/karibu-api/pkg/utils"
	"github.com/karibugroceries/karibu-api/pkg/validator"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators
	validator.RegisterCustomValidators()

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize the seeded in-memory store and repositories
	store := memory.NewStore()
	produceRepo := memory.NewProduceRepository(store, cfg.Company.LowStockThresholdKg)
	saleRepo := memory.NewSaleRepository(store)
	creditSaleRepo := memory.NewCreditSaleRepository(store)

	// Initialize services
	authService := service.NewAuthService(jwtManager, enum.Branch(cfg.Company.DefaultBranch))
	dashboardService := service.NewDashboardService(produceRepo, saleRepo, creditSaleRepo, cfg.Company.LowStockThresholdKg)
	inventoryService := service.NewInventoryService(produceRepo, cfg.Company.LowStockThresholdKg)
	salesService := service.NewSalesService(saleRepo, produceRepo)
	creditService := service.NewCreditService(creditSaleRepo)
	reportService := service.NewReportService(produceRepo, saleRepo, creditSaleRepo, cfg.Company.Name, cfg.Company.LowStockThresholdKg)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Sales:     handler.NewSalesHandler(salesService),
		Credit:    handler.NewCreditHandler(creditService),
		Report:    handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
