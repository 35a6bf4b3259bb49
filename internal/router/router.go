package router

import (
	"time"

	"github.com/guilhermehba/estoque-ferro-velho/internal/config"
	"github.com/guilhermehba/estoque-ferro-velho/internal/handler"
	"github.com/guilhermehba/estoque-ferro-velho/internal/middleware"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"
	"github.com/guilhermehba/estoque-ferro-velho/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Repos bundles the storage backend picked at the composition root.
// Both the HTTP layer and the worker pool must share one backend, so the
// repositories are built once in main and injected here — the in-memory
// store would otherwise be instantiated twice and diverge.
type Repos struct {
	Stock     repository.StockRepository
	Purchases repository.PurchaseRepository
	Sales     repository.SaleRepository
	Users     repository.UserRepository
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/memory store.
// db is nil when running on the in-memory store; rdb (and dispatcher) are
// nil when the async report queue is disabled.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, repos Repos, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(repos.Users, cfg)
	stockSvc := service.NewStockService(repos.Stock)
	purchaseSvc := service.NewPurchaseService(repos.Purchases, stockSvc)
	saleSvc := service.NewSaleService(repos.Sales, repos.Stock, stockSvc)
	cashflowSvc := service.NewCashflowService(repos.Purchases, repos.Sales)
	dashboardSvc := service.NewDashboardService(repos.Stock, repos.Purchases, repos.Sales, cashflowSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	stockH := handler.NewStockHandler(stockSvc)
	purchasesH := handler.NewPurchaseHandler(purchaseSvc)
	salesH := handler.NewSaleHandler(saleSvc)
	cashflowH := handler.NewCashflowHandler(cashflowSvc, dispatcher)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		v1.GET("/dashboard", dashboardH.Summary)

		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.List)
			stock.GET("/:id", stockH.GetByID)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("", purchasesH.List)
			purchases.GET("/:id", purchasesH.GetByID)
			purchases.GET("/:id/items", purchasesH.GetItems)
			purchases.DELETE("/:id", purchasesH.Delete)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Create)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.GetByID)
			sales.DELETE("/:id", salesH.Delete)
		}

		cashflow := v1.Group("/cashflow")
		{
			cashflow.GET("", cashflowH.List)
			cashflow.GET("/summary", cashflowH.Summary)
			cashflow.GET("/export", cashflowH.Export)
			cashflow.POST("/export", cashflowH.ExportAsync)
		}
	}

	return r
}
