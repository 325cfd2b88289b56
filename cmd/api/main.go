package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/Litigios-api/internal/application/analytics"
	"github.com/jhoicas/Litigios-api/internal/application/auth"
	"github.com/jhoicas/Litigios-api/internal/application/occurrence"
	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/application/report"
	"github.com/jhoicas/Litigios-api/internal/application/usecase"
	infraai "github.com/jhoicas/Litigios-api/internal/infrastructure/ai"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/events"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/export"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/lock"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/memory"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Litigios-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Litigios-api/internal/interfaces/http"
	"github.com/jhoicas/Litigios-api/pkg/config"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeRepo()

	// Lock por ocorrência: Redis si hay varias réplicas, si no en memoria del proceso.
	var locker ports.Locker = lock.NewLocalLocker()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		locker = lock.NewRedisLocker(rdb, cfg.App.Name, cfg.Redis.LockTTL())
	}

	store := occurrence.NewStore(repo, locker, log)
	if err := store.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicializar ocorrências")
	}

	var publisher ports.EventPublisher = events.Nop{}
	if cfg.NATS.URL != "" {
		nc, err := events.Connect(cfg.NATS.URL, cfg.NATS.SubjectPrefix, cfg.App.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer nc.Close()
		publisher = nc
	}

	llm, err := infraai.NewFromConfig(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de IA")
	}
	if llm == nil {
		log.Warn().Msg("servicio de IA deshabilitado, las sugerencias usan texto fijo")
	}

	recorder := metrics.New()
	userRepo := memory.NewUserRepository()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	occurrenceUC := usecase.NewOccurrenceUseCase(store, publisher, recorder, log)
	aiUC := usecase.NewAIUseCase(llm, occurrenceUC, cfg.AI.Timeout(), recorder, log)
	dashboardUC := appanalytics.NewDashboardUseCase(occurrenceUC)
	reportUC := report.NewReportUseCase(occurrenceUC,
		export.NewCSVRenderer(),
		export.NewXMLRenderer(),
		infrapdf.NewReportRenderer(),
	)

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AuthUC:       authUC,
		OccurrenceUC: occurrenceUC,
		AIUC:         aiUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		Metrics:      recorder,
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
		ServiceName:  cfg.App.Name,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); cfg.HTTP.SwaggerFile != "" && err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Litígios API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
