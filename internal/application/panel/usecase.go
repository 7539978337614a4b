// Package panel implementa el dashboard: últimos movimientos y accesos a las
// demás vistas. Solo lectura.
package panel

import (
	"context"

	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Cantidad máxima de movimientos recientes a mostrar.
const maxRecientes = 10

// Gateway operaciones del backend que necesita el dashboard.
type Gateway interface {
	Movimientos(ctx context.Context) ([]entity.Movimiento, error)
}

// UseCase caso de uso del dashboard.
type UseCase struct {
	gw Gateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw Gateway) *UseCase {
	return &UseCase{gw: gw}
}

// Recientes devuelve los primeros diez movimientos en el orden en que el
// backend los entrega; aquí no se reordena nada.
func (uc *UseCase) Recientes(ctx context.Context) ([]entity.Movimiento, error) {
	movimientos, err := uc.gw.Movimientos(ctx)
	if err != nil {
		return nil, err
	}
	if len(movimientos) > maxRecientes {
		movimientos = movimientos[:maxRecientes]
	}
	return movimientos, nil
}
