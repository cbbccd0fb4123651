package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/documentflow/documentflow-api/internal/application/usecase"
	"github.com/documentflow/documentflow-api/internal/infrastructure/mail"
	"github.com/documentflow/documentflow-api/internal/infrastructure/postgres"
	"github.com/documentflow/documentflow-api/internal/infrastructure/storage"
	httpRouter "github.com/documentflow/documentflow-api/internal/interfaces/http"
	"github.com/documentflow/documentflow-api/pkg/config"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	deadlineRepo := postgres.NewDeadlineRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	// Almacenamiento de blobs: S3 remoto con respaldo local. Sin credenciales
	// S3 todo va directo a disco.
	localStore, err := storage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.URLPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}
	s3Cfg := storage.S3Config{
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	}
	var remote storage.FileStore
	if s3Cfg.Configured() {
		s3Store, err := storage.NewS3Store(ctx, s3Cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento S3")
		}
		remote = s3Store
		log.Info().Str("bucket", s3Cfg.Bucket).Msg("almacenamiento remoto habilitado")
	} else {
		log.Info().Str("dir", cfg.Storage.LocalDir).Msg("sin credenciales S3, usando disco local")
	}
	store := storage.NewFallbackStore(remote, localStore, log)

	mailer := mail.NewMailer(cfg.SMTP, cfg.App.URL, log)

	userUC := usecase.NewUserUseCase(userRepo, documentRepo, deadlineRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, userRepo, notificationRepo, store, mailer, log)
	deadlineUC := usecase.NewDeadlineUseCase(deadlineRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	reminderUC := usecase.NewReminderUseCase(reminderRepo, deadlineRepo, userRepo, notificationRepo, mailer, log)
	reportingUC := usecase.NewReportingUseCase(statsRepo, userRepo, documentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    usecase.MaxFileSize + 1024*1024, // margen para el resto del form
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DocumentFlow API",
	}))

	// Uploads locales servidos como estáticos
	app.Static(cfg.Storage.URLPrefix, cfg.Storage.LocalDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:         userUC,
		DocumentUC:     documentUC,
		DeadlineUC:     deadlineUC,
		NotificationUC: notificationUC,
		ReminderUC:     reminderUC,
		ReportingUC:    reportingUC,
		JWTSecret:      cfg.JWT.Secret,
	})

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
