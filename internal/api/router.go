package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peoplehub/employee-api/docs"
	"github.com/peoplehub/employee-api/internal/api/handler"
	"github.com/peoplehub/employee-api/internal/api/middleware"
	"github.com/peoplehub/employee-api/internal/core/service"
	"github.com/peoplehub/employee-api/internal/infrastructure/config"
	mongodb "github.com/peoplehub/employee-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehub/employee-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/peoplehub/employee-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are constructed once here and passed by reference; there
// are no package-level service singletons.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
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
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authHandler := handler.NewAuthHandler(authService)
	requireAuth := middleware.Auth(authService)

	employeeRepo := mongodb.NewEmployeeRepository(db)
	reportCache := redisdb.NewReportCache(rdb, time.Duration(cfg.Redis.ReportCacheTTLSeconds)*time.Second)
	employeeService := service.NewEmployeeService(employeeRepo, reportCache, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Employee routes ---
	// Reads are public; mutations require a valid bearer token.
	e.GET("/employees", employeeHandler.List)
	e.GET("/employees/search", employeeHandler.Search)
	e.GET("/employees/avg-salary", employeeHandler.AverageSalary)
	e.GET("/employees/:employee_id", employeeHandler.Get)
	e.POST("/employees", employeeHandler.Create, requireAuth)
	e.PUT("/employees/:employee_id", employeeHandler.Update, requireAuth)
	e.DELETE("/employees/:employee_id", employeeHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
