package main

import (
	"context"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/electrovision-web/internal/application/acceso"
	"github.com/jhoicas/electrovision-web/internal/application/catalogo"
	"github.com/jhoicas/electrovision-web/internal/application/estoque"
	"github.com/jhoicas/electrovision-web/internal/application/panel"
	"github.com/jhoicas/electrovision-web/internal/infrastructure/electrovision"
	httpRouter "github.com/jhoicas/electrovision-web/internal/interfaces/http"
	"github.com/jhoicas/electrovision-web/internal/session"
	"github.com/jhoicas/electrovision-web/pkg/config"
	"github.com/jhoicas/electrovision-web/pkg/logger"
	"github.com/jhoicas/electrovision-web/web"
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
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es obligatorio")
	}

	// Cliente del backend remoto: única frontera de red del front end
	backend := electrovision.New(cfg.API.BaseURL, cfg.API.Prefix, log)

	sesiones := session.NewStore(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.Expiration)

	accesoUC := acceso.NewUseCase(backend)
	catalogoUC := catalogo.NewUseCase(backend)
	estoqueUC := estoque.NewUseCase(backend)
	panelUC := panel.NewUseCase(backend)

	render, err := httpRouter.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("parsear plantillas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       nethttp.FS(web.Static),
		PathPrefix: "static",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccesoUC:      accesoUC,
		CatalogoUC:    catalogoUC,
		EstoqueUC:     estoqueUC,
		PanelUC:       panelUC,
		Sesiones:      sesiones,
		Render:        render,
		Log:           log,
		SesionMinutos: cfg.Session.Expiration,
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
