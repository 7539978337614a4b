package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/application/catalogo"
	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// CatalogoHandler maneja la vista de registro de productos.
type CatalogoHandler struct {
	uc     *catalogo.UseCase
	render *Renderer
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase, render *Renderer) *CatalogoHandler {
	return &CatalogoHandler{uc: uc, render: render}
}

// Listado muestra el catálogo. Con ?q= aplica el filtro local por subcadena;
// con el botón de búsqueda (?buscar=1) delega en el endpoint del backend.
// Ante fallo del backend se muestra el banner y la tabla queda como estaba.
// GET /productos
func (h *CatalogoHandler) Listado(c *fiber.Ctx) error {
	datos := datosCatalogo{datosBase: baseVista(c, "Registro de productos")}
	datos.Termino = c.Query("q")

	var productos []entity.Producto
	var err error
	if c.Query("buscar") != "" && strings.TrimSpace(datos.Termino) != "" {
		productos, err = h.uc.Buscar(c.Context(), datos.Termino)
	} else {
		productos, err = h.uc.Listar(c.Context())
		if err == nil {
			productos = catalogo.Filtrar(productos, datos.Termino)
		}
	}
	if err != nil {
		datos.Error = domain.MensajeUsuario(err, "Error al cargar productos")
	} else {
		datos.Productos = productos
	}

	return h.render.Render(c, "productos", datos)
}

// Nuevo muestra el formulario de alta vacío.
// GET /productos/nuevo
func (h *CatalogoHandler) Nuevo(c *fiber.Ctx) error {
	return h.render.Render(c, "producto_form", datosFormularioProducto{
		datosBase: baseVista(c, "Registro de productos"),
	})
}

// Editar muestra el formulario precargado con el producto elegido.
// GET /productos/:id/editar
func (h *CatalogoHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		escribirFlash(c, Flash{Error: "Producto inválido"})
		return c.Redirect("/productos", fiber.StatusFound)
	}

	productos, err := h.uc.Listar(c.Context())
	if err != nil {
		escribirFlash(c, Flash{Error: domain.MensajeUsuario(err, "Error al cargar productos")})
		return c.Redirect("/productos", fiber.StatusFound)
	}
	for _, p := range productos {
		if p.ID == id {
			return h.render.Render(c, "producto_form", datosFormularioProducto{
				datosBase: baseVista(c, "Registro de productos"),
				Editando:  true,
				Formulario: catalogo.FormularioProducto{
					ID:             p.ID,
					Nombre:         p.Nombre,
					Especificacion: p.Especificacion,
					Cantidad:       strconv.Itoa(p.Cantidad),
					Estante:        p.Estante,
				},
			})
		}
	}

	escribirFlash(c, Flash{Error: "Producto no encontrado"})
	return c.Redirect("/productos", fiber.StatusFound)
}

// Guardar procesa el alta o la edición. La validación fallida vuelve al
// formulario con lo tecleado y sin tocar el backend.
// POST /productos/guardar
func (h *CatalogoHandler) Guardar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.FormValue("id"))
	formulario := catalogo.FormularioProducto{
		ID:             id,
		Nombre:         strings.TrimSpace(c.FormValue("nombre")),
		Especificacion: strings.TrimSpace(c.FormValue("especificacion")),
		Cantidad:       c.FormValue("cantidad"),
		Estante:        strings.TrimSpace(c.FormValue("estante")),
	}

	creado, err := h.uc.Guardar(c.Context(), formulario)
	if err != nil {
		datos := datosFormularioProducto{
			datosBase:  baseVista(c, "Registro de productos"),
			Formulario: formulario,
			Editando:   id != 0,
		}
		datos.Error = domain.MensajeUsuario(err, "Error al guardar el producto")
		return h.render.Render(c, "producto_form", datos)
	}

	mensaje := "¡Producto actualizado con éxito!"
	if creado {
		mensaje = "¡Producto registrado con éxito!"
	}
	escribirFlash(c, Flash{Exito: mensaje})
	return c.Redirect("/productos", fiber.StatusFound)
}

// Eliminar borra un producto. La confirmación ocurre en el navegador.
// POST /productos/:id/eliminar
func (h *CatalogoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		escribirFlash(c, Flash{Error: "Producto inválido"})
		return c.Redirect("/productos", fiber.StatusFound)
	}

	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		escribirFlash(c, Flash{Error: domain.MensajeUsuario(err, "Error al eliminar el producto")})
	} else {
		escribirFlash(c, Flash{Exito: "¡Producto eliminado con éxito!"})
	}
	return c.Redirect("/productos", fiber.StatusFound)
}

// Ajuste registra el movimiento rápido de una unidad desde los botones +/-.
// La cantidad y el nombre viajan ocultos desde la fila renderizada: una
// salida con cero unidades se corta aquí sin viaje al backend.
// POST /productos/:id/ajuste
func (h *CatalogoHandler) Ajuste(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		escribirFlash(c, Flash{Error: "Producto inválido"})
		return c.Redirect("/productos", fiber.StatusFound)
	}
	cantidad, _ := strconv.Atoi(c.FormValue("cantidad"))
	tipo := c.FormValue("tipo")
	nombre := c.FormValue("nombre")

	producto := entity.Producto{ID: id, Nombre: nombre, Cantidad: cantidad}
	alerta, err := h.uc.AjusteRapido(c.Context(), *Usuario(c), producto, tipo)
	switch {
	case errors.Is(err, domain.ErrStockInsuficiente):
		escribirFlash(c, Flash{Error: "Stock insuficiente"})
	case err != nil:
		escribirFlash(c, Flash{Error: domain.MensajeUsuario(err, "Error al actualizar el stock")})
	default:
		signo := "+1"
		if tipo == entity.TipoSaida {
			signo = "-1"
		}
		escribirFlash(c, Flash{Exito: signo + " " + nombre, Alerta: alerta})
	}
	return c.Redirect("/productos", fiber.StatusFound)
}
