package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/config"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/handler"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/middleware"
	"github.com/karibugroceries/karibu-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Inventory *handler.InventoryHandler
	Sales     *handler.SalesHandler
	Credit    *handler.CreditHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Dashboard is visible to every role
	protected.GET("/dashboard", h.Dashboard.GetDashboard)

	registerInventoryRoutes(protected, h)
	registerSalesRoutes(protected, h)
	registerCreditRoutes(protected, h)
	registerReportRoutes(protected, h)
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	inventory.Use(middleware.RequireRole(enum.RoleManager, enum.RoleSalesAgent))
	{
		inventory.GET("", h.Inventory.ListProduce)
		inventory.GET("/low-stock", h.Inventory.LowStockProduce)
	}

	// Procurement is a manager-only activity
	procurement := protected.Group("/procurement")
	procurement.Use(middleware.RequireRole(enum.RoleManager))
	{
		procurement.POST("", h.Inventory.RecordProcurement)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequireRole(enum.RoleManager, enum.RoleSalesAgent))
	{
		sales.GET("", h.Sales.ListSales)
		sales.POST("", h.Sales.RecordSale)
	}
}

func registerCreditRoutes(protected *gin.RouterGroup, h *Handlers) {
	credits := protected.Group("/credit-sales")
	credits.Use(middleware.RequireRole(enum.RoleManager, enum.RoleSalesAgent))
	{
		credits.GET("", h.Credit.ListCreditSales)
		credits.POST("", h.Credit.RecordCreditSale)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(enum.RoleManager, enum.RoleDirector))
	{
		reports.GET("/summary", h.Report.GetSummary)
	}

	exports := protected.Group("/exports")
	exports.Use(middleware.RequireRole(enum.RoleManager, enum.RoleDirector))
	{
		exports.GET("/:report", h.Report.Export)
	}
}
