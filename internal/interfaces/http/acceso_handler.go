package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/application/acceso"
	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/session"
)

// AccesoHandler maneja el inicio y cierre de sesión.
type AccesoHandler struct {
	uc            *acceso.UseCase
	sesiones      *session.Store
	render        *Renderer
	sesionMinutos int
}

// NewAccesoHandler construye el handler.
func NewAccesoHandler(uc *acceso.UseCase, sesiones *session.Store, render *Renderer, sesionMinutos int) *AccesoHandler {
	return &AccesoHandler{uc: uc, sesiones: sesiones, render: render, sesionMinutos: sesionMinutos}
}

// Formulario muestra la pantalla de login.
// GET /login
func (h *AccesoHandler) Formulario(c *fiber.Ctx) error {
	return h.render.Render(c, "login", datosLogin{datosBase: baseVista(c, "Iniciar sesión")})
}

// Entrar procesa la clave de acceso. El error se muestra en la misma página
// conservando lo tecleado; el éxito deja la cookie de sesión y va al dashboard.
// POST /login
func (h *AccesoHandler) Entrar(c *fiber.Ctx) error {
	chave := c.FormValue("chave")

	funcionario, err := h.uc.Entrar(c.Context(), chave)
	if err != nil {
		datos := datosLogin{datosBase: baseVista(c, "Iniciar sesión"), Chave: chave}
		datos.Error = domain.MensajeUsuario(err, "Error al iniciar sesión")
		return h.render.Render(c, "login", datos)
	}

	valor, err := h.sesiones.Emitir(*funcionario)
	if err != nil {
		datos := datosLogin{datosBase: baseVista(c, "Iniciar sesión"), Chave: chave}
		datos.Error = "No se pudo iniciar la sesión"
		return h.render.Render(c, "login", datos)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    valor,
		Path:     "/",
		MaxAge:   h.sesionMinutos * 60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Salir destruye la sesión.
// POST /logout
func (h *AccesoHandler) Salir(c *fiber.Ctx) error {
	borrarCookie(c, session.CookieName)
	return c.Redirect("/login", fiber.StatusFound)
}
