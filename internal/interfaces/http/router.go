package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/application/acceso"
	"github.com/jhoicas/electrovision-web/internal/application/catalogo"
	"github.com/jhoicas/electrovision-web/internal/application/estoque"
	"github.com/jhoicas/electrovision-web/internal/application/panel"
	"github.com/jhoicas/electrovision-web/internal/session"
	"github.com/jhoicas/electrovision-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccesoUC      *acceso.UseCase
	CatalogoUC    *catalogo.UseCase
	EstoqueUC     *estoque.UseCase
	PanelUC       *panel.UseCase
	Sesiones      *session.Store
	Render        *Renderer
	Log           *logger.Logger
	SesionMinutos int
}

// Router registra las rutas del front end. La guardia de navegación es pura:
// sin sesión toda ruta protegida cae en /login, con sesión /login cae en el
// dashboard, y la raíz decide según haya sesión o no.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(LoggingMiddleware(deps.Log))
	app.Use(SesionMiddleware(deps.Sesiones, deps.Log))

	app.Get("/", func(c *fiber.Ctx) error {
		if Usuario(c) != nil {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Redirect("/login", fiber.StatusFound)
	})

	accesoHandler := NewAccesoHandler(deps.AccesoUC, deps.Sesiones, deps.Render, deps.SesionMinutos)
	app.Get("/login", SoloAnonimo, accesoHandler.Formulario)
	app.Post("/login", SoloAnonimo, accesoHandler.Entrar)
	app.Post("/logout", accesoHandler.Salir)

	// Preferencia de tema, ajena al negocio
	app.Post("/tema", CambiarTema)

	// Vistas protegidas (requieren sesión)
	panelHandler := NewPanelHandler(deps.PanelUC, deps.Render, deps.Log)
	app.Get("/dashboard", RequiereSesion, panelHandler.Vista)

	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC, deps.Render)
	app.Get("/productos", RequiereSesion, catalogoHandler.Listado)
	app.Get("/productos/nuevo", RequiereSesion, catalogoHandler.Nuevo)
	app.Get("/productos/:id/editar", RequiereSesion, catalogoHandler.Editar)
	app.Post("/productos/guardar", RequiereSesion, catalogoHandler.Guardar)
	app.Post("/productos/:id/eliminar", RequiereSesion, catalogoHandler.Eliminar)
	app.Post("/productos/:id/ajuste", RequiereSesion, catalogoHandler.Ajuste)

	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC, deps.Render)
	app.Get("/estoque", RequiereSesion, estoqueHandler.Vista)
	app.Post("/estoque/movimientos", RequiereSesion, estoqueHandler.Registrar)
}
