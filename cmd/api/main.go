package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/academico-api/internal/application/auth"
	"github.com/jhoicas/academico-api/internal/application/usecase"
	"github.com/jhoicas/academico-api/internal/domain/documento"
	infrapdf "github.com/jhoicas/academico-api/internal/infrastructure/pdf"
	"github.com/jhoicas/academico-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/academico-api/internal/interfaces/http"
	"github.com/jhoicas/academico-api/pkg/config"
	"github.com/jhoicas/academico-api/pkg/logger"
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

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	invRepo := postgres.NewInvestigacionRepository(pool)
	comRepo := postgres.NewComentarioRepository(pool)
	pregRepo := postgres.NewPreguntaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	codec := documento.NewCodec(cfg.Upload.MaxPDFBytes(), cfg.Upload.MaxImagenBytes())

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	invUC := usecase.NewInvestigacionUseCase(txRunner, invRepo, comRepo, pregRepo, codec)
	socialUC := usecase.NewSocialUseCase(txRunner, invRepo, comRepo, pregRepo)

	// PDF: ficha técnica imprimible de la investigación
	fichaGenerator := infrapdf.NewMarotoFichaGenerator()
	fichaUC := usecase.NewFichaUseCase(invRepo, pregRepo, fichaGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Upload.BodyLimitBytes(),
	})
	app.Use(recover.New())

	corsCfg := cors.Config{AllowOrigins: cfg.CORS.Origins}
	if cfg.CORS.AllowAll() {
		corsCfg.AllowOrigins = "*"
	}
	app.Use(cors.New(corsCfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		InvUC:     invUC,
		FichaUC:   fichaUC,
		SocialUC:  socialUC,
		JWTSecret: cfg.JWT.Secret,
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
