package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/coreforge/mrp/docs"
	"github.com/coreforge/mrp/internal/api/handler"
	"github.com/coreforge/mrp/internal/api/middleware"
	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/service"
	"github.com/coreforge/mrp/internal/infrastructure/config"
	mongodb "github.com/coreforge/mrp/internal/infrastructure/db/mongo"
	redisdb "github.com/coreforge/mrp/internal/infrastructure/db/redis"
	"github.com/coreforge/mrp/internal/infrastructure/memstore"
)

const requestTimeout = 30 * time.Second

// Deps carries the process-lifetime dependencies the router wires together.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Inventory *memstore.InventoryStore
	Team      *memstore.TeamStore
	Enqueuer  service.MovementEnqueuer
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.ContextTimeout(requestTimeout))
	e.Use(echoprometheus.NewMiddleware("mrp"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	productRepo := mongodb.NewProductRepository(deps.DB)
	orderRepo := mongodb.NewOrderRepository(deps.DB)
	maintenanceRepo := mongodb.NewMaintenanceRepository(deps.DB)
	denylist := redisdb.NewTokenDenylist(deps.Redis)

	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, deps.Logger)
	productService := service.NewProductService(productRepo, deps.Logger)
	orderService := service.NewOrderService(orderRepo, productRepo, deps.Enqueuer, deps.Logger)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, deps.Logger)
	inventoryService := service.NewInventoryService(deps.Inventory, deps.Enqueuer, deps.Logger)
	teamService := service.NewTeamService(deps.Team, deps.Logger)
	financialService := service.NewFinancialService(orderRepo, productRepo, maintenanceRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	employeeHandler := handler.NewEmployeeHandler(teamService)
	financialHandler := handler.NewFinancialHandler(financialService)

	authMW := middleware.Auth(cfg.JWTSecret, denylist, deps.Logger)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMW)
	auth.PUT("/password", authHandler.ChangePassword, authMW)
	auth.POST("/logout", authHandler.Logout, authMW)

	// --- Users (administrator only) ---
	users := e.Group("/api/users", authMW, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Employees (reads for everyone, writes administrator only) ---
	employees := e.Group("/api/employees", authMW)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.PUT("/:id", employeeHandler.Update, adminOnly)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	// --- Maintenance ---
	maintenance := e.Group("/api/maintenance", authMW)
	maintenance.GET("", maintenanceHandler.List)
	maintenance.GET("/:id", maintenanceHandler.Get)
	maintenance.POST("", maintenanceHandler.Create)
	maintenance.PUT("/:id/status", maintenanceHandler.UpdateStatus, middleware.RBAC(domain.RoleAdmin, domain.RoleMaintenance))
	maintenance.DELETE("/:id", maintenanceHandler.Delete, adminOnly)

	// --- Products (reads for everyone, writes administrator only) ---
	products := e.Group("/api/products", authMW)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Inventory ---
	inventory := e.Group("/api/inventory", authMW)
	inventory.GET("", inventoryHandler.List)
	inventory.GET("/:sku", inventoryHandler.Get)
	inventory.POST("", inventoryHandler.Create, adminOnly)
	inventory.POST("/:sku/adjust", inventoryHandler.Adjust, middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee))

	// --- Orders ---
	orders := e.Group("/api/orders", authMW)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id/status", orderHandler.UpdateStatus, adminOnly)
	orders.DELETE("/:id", orderHandler.Delete, adminOnly)

	// --- Financial reporting ---
	e.GET("/api/financial/overview", financialHandler.Overview) // public: aggregates only
	financial := e.Group("/api/financial", authMW, adminOnly)
	financial.GET("/summary", financialHandler.Summary)
	financial.GET("/orders", financialHandler.Orders)

	return e
}
