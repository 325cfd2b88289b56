package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/Litigios-api/internal/application/analytics"
	"github.com/jhoicas/Litigios-api/internal/application/auth"
	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/report"
	"github.com/jhoicas/Litigios-api/internal/application/usecase"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	OccurrenceUC *usecase.OccurrenceUseCase
	AIUC         *usecase.AIUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ReportUC     *report.ReportUseCase
	Metrics      *metrics.Recorder // nil = sin /metrics
	Log          *logger.Logger
	JWTSecret    string
	ServiceName  string
}

// NewApp crea la aplicación Fiber con recover, request id, access log y
// errores de Fiber (404 de ruta, 405) en formato dto.ErrorResponse.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.ServiceName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			resp := dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
			switch code {
			case fiber.StatusNotFound:
				resp = dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta inexistente"}
			case fiber.StatusMethodNotAllowed:
				resp = dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: err.Error()}
			default:
				if code < fiber.StatusInternalServerError {
					resp = dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()}
				}
			}
			return c.Status(code).JSON(resp)
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	var obs httpObserver
	if deps.Metrics != nil {
		obs = deps.Metrics
	}
	app.Use(AccessLog(deps.Log, obs))

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público): selector de perfil
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Get("/users", authHandler.ListUsers)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	protected.Get("/me", authHandler.Me)

	occHandler := NewOccurrenceHandler(deps.OccurrenceUC)
	aiHandler := NewAIHandler(deps.AIUC)
	occs := protected.Group("/occurrences")
	occs.Get("/", occHandler.List)
	occs.Post("/", RequireRole(string(entity.RoleStoreAdmin), string(entity.RoleGeneralAdmin)), occHandler.Create)
	occs.Get("/:id", occHandler.Get)
	occs.Post("/:id/resolve", RequireRole(string(entity.RoleCDAdmin)), occHandler.Resolve)
	occs.Post("/:id/suggestion", aiHandler.SuggestResolution)

	protected.Post("/ai/analyze", aiHandler.AnalyzeDraft)

	protected.Get("/dashboard/summary", NewDashboardHandler(deps.DashboardUC).GetSummary)
	protected.Get("/reports/occurrences", NewReportHandler(deps.ReportUC).Export)
}
