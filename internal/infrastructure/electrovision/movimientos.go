package electrovision

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

func (c *Client) decodificarMovimientos(raw json.RawMessage) ([]entity.Movimiento, error) {
	if !presente(raw) {
		return []entity.Movimiento{}, nil
	}
	var wires []movimientoWire
	if err := json.Unmarshal(raw, &wires); err != nil {
		c.log.Warn().Err(err).Msg("decodificar lista de movimientos")
		return nil, domain.ErrConexion
	}
	movimientos := make([]entity.Movimiento, 0, len(wires))
	for _, w := range wires {
		movimientos = append(movimientos, w.entidad())
	}
	return movimientos, nil
}

// Movimientos devuelve el historial de movimientos en el orden del backend.
func (c *Client) Movimientos(ctx context.Context) ([]entity.Movimiento, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, "/movimentacoes", nil)
	if err != nil {
		return nil, err
	}
	return c.decodificarMovimientos(r.payload(r.Movimentacoes))
}

// MovimientosProducto devuelve el historial de un producto concreto.
func (c *Client) MovimientosProducto(ctx context.Context, productoID int) ([]entity.Movimiento, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, fmt.Sprintf("/movimentacoes/produto/%d", productoID), nil)
	if err != nil {
		return nil, err
	}
	return c.decodificarMovimientos(r.payload(r.Movimentacoes))
}

// CrearMovimiento registra una entrada o salida de stock. Si el movimiento
// deja al producto en umbral de alerta, el backend adjunta un alerta_estoque
// que se devuelve para mostrarse una única vez.
func (c *Client) CrearMovimiento(ctx context.Context, m entity.NuevoMovimiento) (*entity.AlertaEstoque, error) {
	r, err := c.exigirOK(ctx, http.MethodPost, "/movimentacao", movimientoPayload{
		IDProduto:     m.ProductoID,
		IDFuncionario: m.FuncionarioID,
		Tipo:          m.Tipo,
		Quantidade:    m.Cantidad,
		Data:          m.Fecha,
	})
	if err != nil {
		return nil, err
	}
	return r.AlertaEstoque.entidad(), nil
}
