package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/escoffier/enrollment-system/internal/api/handler"
	"github.com/escoffier/enrollment-system/internal/api/middleware"
	"github.com/escoffier/enrollment-system/internal/core/ports"
	"github.com/escoffier/enrollment-system/internal/core/service"
	mongorepo "github.com/escoffier/enrollment-system/internal/infrastructure/db/mongo"
	healthhandlers "github.com/escoffier/enrollment-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies hang off the injected store and provider handles; nothing
// here keeps per-request state.
func NewRouter(db *mongo.Database, rdb *redis.Client, intents ports.PaymentIntentCreator, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("enrollment"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	classRepo := mongorepo.NewClassRepository(db)
	enrollmentRepo := mongorepo.NewEnrollmentRepository(db)
	paymentRepo := mongorepo.NewPaymentRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	classService := service.NewClassService(classRepo, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, intents, log)

	// --- Handlers ---
	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	classHandler := handler.NewClassHandler(classService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// --- Guards ---
	auth := middleware.Auth(jwtSecret)
	requireAdmin := middleware.RequireAdmin(userRepo)
	requireInstructor := middleware.RequireInstructor(userRepo)

	// --- Auth ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- Users ---
	e.GET("/users", userHandler.List, auth, requireAdmin)
	e.GET("/users/admin/:email", userHandler.AdminFlag, auth)
	e.GET("/users/instructor/:email", userHandler.InstructorFlag, auth)
	e.GET("/instructors", userHandler.ListInstructors)
	e.POST("/users", userHandler.Create)
	e.PATCH("/users/role/:id", userHandler.SetRole, auth, requireAdmin)

	// --- Classes ---
	e.GET("/classes", classHandler.List)
	e.GET("/approved", classHandler.ListApproved)
	e.GET("/classes/:id", classHandler.Get)
	e.POST("/classes", classHandler.Create, auth, requireInstructor)
	e.PATCH("/classes/:id", classHandler.Update, auth)
	e.PUT("/classes/:id", classHandler.SetFeedback, auth, requireAdmin)

	// --- Enrollments ---
	e.GET("/enrolls/selected", enrollmentHandler.ListSelected, auth)
	e.GET("/enrolls/enrolled", enrollmentHandler.ListEnrolled, auth)
	e.GET("/enrolls/:id", enrollmentHandler.Get)
	e.POST("/enrolls", enrollmentHandler.Select)
	e.PATCH("/enrolls/:id", enrollmentHandler.Update)
	e.DELETE("/enrolls/:id", enrollmentHandler.Remove, auth)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)
	e.GET("/payments", paymentHandler.History, auth)
	e.POST("/payments", paymentHandler.Record, auth)

	// --- Liveness, readiness, metrics ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "enrollment system is running")
	})
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
