package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peopleops/employee-api/internal/api/handler"
	"github.com/peopleops/employee-api/internal/api/middleware"
	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
	"github.com/peopleops/employee-api/internal/core/service"
	mongodb "github.com/peopleops/employee-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peopleops/employee-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The session gate covers everything except /auth/*, the health probes and
// /metrics; admin-only routes additionally pass the role gate before the
// service policy makes the final ownership-aware decision.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	employeeCache := redisdb.NewEmployeeCache(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, audit, log)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo, employeeCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	sessionGate := middleware.Session(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdministrator)

	// --- Auth routes (exempt from the session gate) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Employee routes ---
	employees := e.Group("/employees", sessionGate)
	employees.GET("", employeeHandler.List, adminOnly)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
