package electrovision

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// decodificarProductos normaliza una lista de productos del cable.
func (c *Client) decodificarProductos(raw json.RawMessage) ([]entity.Producto, error) {
	if !presente(raw) {
		return []entity.Producto{}, nil
	}
	var wires []productoWire
	if err := json.Unmarshal(raw, &wires); err != nil {
		c.log.Warn().Err(err).Msg("decodificar lista de productos")
		return nil, domain.ErrConexion
	}
	productos := make([]entity.Producto, 0, len(wires))
	for _, w := range wires {
		productos = append(productos, w.entidad())
	}
	return productos, nil
}

// Productos devuelve el catálogo completo.
func (c *Client) Productos(ctx context.Context) ([]entity.Producto, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, "/produtos", nil)
	if err != nil {
		return nil, err
	}
	return c.decodificarProductos(r.payload(r.Produtos))
}

// Producto devuelve un producto por su identificador.
func (c *Client) Producto(ctx context.Context, id int) (*entity.Producto, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, fmt.Sprintf("/produto/%d", id), nil)
	if err != nil {
		return nil, err
	}
	raw := r.payload(r.Produto)
	if !presente(raw) {
		return nil, &domain.ErrorBackend{Codigo: r.codigoHTTP, Mensaje: r.mensaje()}
	}
	var w productoWire
	if err := json.Unmarshal(raw, &w); err != nil {
		c.log.Warn().Err(err).Msg("decodificar producto")
		return nil, domain.ErrConexion
	}
	p := w.entidad()
	return &p, nil
}

// BuscarProductos delega la búsqueda por nombre en el backend.
// Esta ruta no tiene por qué coincidir con el filtro local del catálogo.
func (c *Client) BuscarProductos(ctx context.Context, nombre string) ([]entity.Producto, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, "/produtos/buscar/"+url.PathEscape(nombre), nil)
	if err != nil {
		return nil, err
	}
	return c.decodificarProductos(r.payload(r.Produtos))
}

// CrearProducto registra un producto nuevo. El ID lo asigna el backend.
func (c *Client) CrearProducto(ctx context.Context, p entity.Producto) error {
	_, err := c.exigirOK(ctx, http.MethodPost, "/produto", productoPayload{
		Nome:          p.Nombre,
		Especificacao: p.Especificacion,
		Qtd:           p.Cantidad,
		Prateleira:    p.Estante,
	})
	return err
}

// ActualizarProducto modifica un producto existente.
func (c *Client) ActualizarProducto(ctx context.Context, p entity.Producto) error {
	_, err := c.exigirOK(ctx, http.MethodPut, fmt.Sprintf("/produto/%d", p.ID), productoPayload{
		Nome:          p.Nombre,
		Especificacao: p.Especificacion,
		Qtd:           p.Cantidad,
		Prateleira:    p.Estante,
	})
	return err
}

// EliminarProducto borra un producto por ID.
func (c *Client) EliminarProducto(ctx context.Context, id int) error {
	_, err := c.exigirOK(ctx, http.MethodDelete, fmt.Sprintf("/produto/%d", id), nil)
	return err
}
