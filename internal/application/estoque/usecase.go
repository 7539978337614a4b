// Package estoque implementa la vista de gestión de stock: formulario de
// movimientos y tabla de productos ordenada alfabéticamente con su estado.
package estoque

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Gateway operaciones del backend que necesita la vista de stock.
type Gateway interface {
	Productos(ctx context.Context) ([]entity.Producto, error)
	CrearMovimiento(ctx context.Context, m entity.NuevoMovimiento) (*entity.AlertaEstoque, error)
}

// FormularioMovimiento datos crudos del formulario de movimiento.
type FormularioMovimiento struct {
	ProductoID string `validate:"required"`
	Tipo       string `validate:"required,oneof=entrada saida"`
	Cantidad   string `validate:"required"`
	Fecha      string `validate:"required"`
}

// UseCase casos de uso de la vista de stock.
type UseCase struct {
	gw       Gateway
	validate *validator.Validate
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw Gateway) *UseCase {
	return &UseCase{gw: gw, validate: validator.New()}
}

// ListarOrdenado trae el catálogo ordenado por nombre ascendente.
// Orden estable: productos con el mismo nombre conservan el orden del backend.
func (uc *UseCase) ListarOrdenado(ctx context.Context) ([]entity.Producto, error) {
	productos, err := uc.gw.Productos(ctx)
	if err != nil {
		return nil, err
	}
	Ordenar(productos)
	return productos, nil
}

// Ordenar ordena in situ por nombre con colación en español.
func Ordenar(productos []entity.Producto) {
	col := collate.New(language.Spanish)
	sort.SliceStable(productos, func(i, j int) bool {
		return col.CompareString(productos[i].Nombre, productos[j].Nombre) < 0
	})
}

// Registrar valida el formulario y registra el movimiento en el backend.
// Devuelve el alerta de stock si el backend adjuntó uno.
func (uc *UseCase) Registrar(ctx context.Context, funcionarioID int, f FormularioMovimiento) (*entity.AlertaEstoque, error) {
	if err := uc.validate.Struct(f); err != nil {
		return nil, &domain.ErrorValidacion{Mensaje: "Todos los campos son obligatorios"}
	}
	productoID, err := strconv.Atoi(strings.TrimSpace(f.ProductoID))
	if err != nil || productoID <= 0 {
		return nil, &domain.ErrorValidacion{Mensaje: "Selecciona un producto"}
	}
	cantidad, err := strconv.Atoi(strings.TrimSpace(f.Cantidad))
	if err != nil || cantidad <= 0 {
		return nil, &domain.ErrorValidacion{Mensaje: "La cantidad debe ser un número positivo"}
	}
	return uc.gw.CrearMovimiento(ctx, entity.NuevoMovimiento{
		ProductoID:    productoID,
		FuncionarioID: funcionarioID,
		Tipo:          f.Tipo,
		Cantidad:      cantidad,
		Fecha:         f.Fecha,
	})
}
