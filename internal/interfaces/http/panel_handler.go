package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/application/panel"
	"github.com/jhoicas/electrovision-web/pkg/logger"
)

// PanelHandler maneja el dashboard.
type PanelHandler struct {
	uc     *panel.UseCase
	render *Renderer
	log    *logger.Logger
}

// NewPanelHandler construye el handler.
func NewPanelHandler(uc *panel.UseCase, render *Renderer, log *logger.Logger) *PanelHandler {
	return &PanelHandler{uc: uc, render: render, log: log}
}

// Vista muestra los accesos a las demás vistas y los últimos diez movimientos.
// Si el historial no se puede cargar se muestra la página igualmente, vacía.
// GET /dashboard
func (h *PanelHandler) Vista(c *fiber.Ctx) error {
	datos := datosPanel{datosBase: baseVista(c, "Dashboard")}

	movimientos, err := h.uc.Recientes(c.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("cargar movimientos recientes")
	} else {
		datos.Movimientos = movimientos
	}

	return h.render.Render(c, "dashboard", datos)
}
