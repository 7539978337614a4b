package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/application/estoque"
	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// EstoqueHandler maneja la vista de gestión de stock.
type EstoqueHandler struct {
	uc     *estoque.UseCase
	render *Renderer
}

// NewEstoqueHandler construye el handler.
func NewEstoqueHandler(uc *estoque.UseCase, render *Renderer) *EstoqueHandler {
	return &EstoqueHandler{uc: uc, render: render}
}

// formularioInicial deja el formulario en su estado por defecto: tipo
// entrada y fecha de hoy (o la última usada, que se conserva entre envíos).
func formularioInicial(fecha string) estoque.FormularioMovimiento {
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	return estoque.FormularioMovimiento{Tipo: entity.TipoEntrada, Fecha: fecha}
}

// Vista muestra el formulario de movimiento y la tabla ordenada con estados.
// GET /estoque
func (h *EstoqueHandler) Vista(c *fiber.Ctx) error {
	datos := datosEstoque{
		datosBase:  baseVista(c, "Gestión de stock"),
		Formulario: formularioInicial(c.Query("fecha")),
	}

	productos, err := h.uc.ListarOrdenado(c.Context())
	if err != nil {
		datos.Error = domain.MensajeUsuario(err, "Error al cargar productos")
	} else {
		datos.Productos = productos
	}

	return h.render.Render(c, "estoque", datos)
}

// Registrar procesa el formulario de movimiento. El éxito limpia producto,
// cantidad y tipo pero conserva la fecha; el fallo vuelve con lo tecleado.
// POST /estoque/movimientos
func (h *EstoqueHandler) Registrar(c *fiber.Ctx) error {
	formulario := estoque.FormularioMovimiento{
		ProductoID: c.FormValue("producto_id"),
		Tipo:       c.FormValue("tipo"),
		Cantidad:   c.FormValue("cantidad"),
		Fecha:      c.FormValue("fecha"),
	}

	alerta, err := h.uc.Registrar(c.Context(), Usuario(c).ID, formulario)
	if err != nil {
		datos := datosEstoque{
			datosBase:  baseVista(c, "Gestión de stock"),
			Formulario: formulario,
		}
		datos.Error = domain.MensajeUsuario(err, "Error al registrar el movimiento")
		if productos, errCarga := h.uc.ListarOrdenado(c.Context()); errCarga == nil {
			datos.Productos = productos
		}
		return h.render.Render(c, "estoque", datos)
	}

	tipoTexto := "entrada"
	if formulario.Tipo == entity.TipoSaida {
		tipoTexto = "salida"
	}
	escribirFlash(c, Flash{
		Exito:  "¡Movimiento de " + tipoTexto + " registrado con éxito!",
		Alerta: alerta,
	})
	return c.Redirect("/estoque?fecha="+url.QueryEscape(formulario.Fecha), fiber.StatusFound)
}
