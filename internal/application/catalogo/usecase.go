// Package catalogo implementa la vista de registro de productos: listado con
// filtro, alta/edición/borrado y ajuste rápido de stock de una unidad.
package catalogo

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Gateway operaciones del backend que necesita la vista de catálogo.
type Gateway interface {
	Productos(ctx context.Context) ([]entity.Producto, error)
	BuscarProductos(ctx context.Context, nombre string) ([]entity.Producto, error)
	CrearProducto(ctx context.Context, p entity.Producto) error
	ActualizarProducto(ctx context.Context, p entity.Producto) error
	EliminarProducto(ctx context.Context, id int) error
	CrearMovimiento(ctx context.Context, m entity.NuevoMovimiento) (*entity.AlertaEstoque, error)
}

// FormularioProducto datos crudos del formulario de alta/edición.
// Cantidad llega como texto y se parsea aparte de la validación estructural.
type FormularioProducto struct {
	ID             int    // 0 = alta, distinto de 0 = edición
	Nombre         string `validate:"required"`
	Especificacion string `validate:"required"`
	Cantidad       string `validate:"required"`
	Estante        string `validate:"required"`
}

// UseCase casos de uso de la vista de catálogo.
type UseCase struct {
	gw       Gateway
	validate *validator.Validate
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw Gateway) *UseCase {
	return &UseCase{gw: gw, validate: validator.New()}
}

// Listar trae el catálogo completo, ya normalizado por el gateway.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Producto, error) {
	return uc.gw.Productos(ctx)
}

// Filtrar aplica el filtro local: subcadena sin distinguir mayúsculas sobre
// nombre o especificación. Con término vacío devuelve la lista completa.
func Filtrar(productos []entity.Producto, termino string) []entity.Producto {
	termino = strings.ToLower(strings.TrimSpace(termino))
	if termino == "" {
		return productos
	}
	filtrados := make([]entity.Producto, 0, len(productos))
	for _, p := range productos {
		if strings.Contains(strings.ToLower(p.Nombre), termino) ||
			strings.Contains(strings.ToLower(p.Especificacion), termino) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}

// Buscar delega la búsqueda en el endpoint del backend. Con término vacío se
// comporta como Listar. El backend y el filtro local no tienen por qué
// devolver lo mismo; son dos caminos deliberadamente independientes.
func (uc *UseCase) Buscar(ctx context.Context, termino string) ([]entity.Producto, error) {
	termino = strings.TrimSpace(termino)
	if termino == "" {
		return uc.gw.Productos(ctx)
	}
	return uc.gw.BuscarProductos(ctx, termino)
}

// Guardar valida el formulario y crea o actualiza según venga ID.
// Devuelve true si fue un alta. Ante validación fallida el backend no se toca.
func (uc *UseCase) Guardar(ctx context.Context, f FormularioProducto) (bool, error) {
	if err := uc.validate.Struct(f); err != nil {
		return false, &domain.ErrorValidacion{Mensaje: "Todos los campos son obligatorios"}
	}
	cantidad, err := strconv.Atoi(strings.TrimSpace(f.Cantidad))
	if err != nil || cantidad < 0 {
		return false, &domain.ErrorValidacion{Mensaje: "La cantidad debe ser un número válido"}
	}
	producto := entity.Producto{
		ID:             f.ID,
		Nombre:         f.Nombre,
		Especificacion: f.Especificacion,
		Cantidad:       cantidad,
		Estante:        f.Estante,
	}
	if f.ID == 0 {
		return true, uc.gw.CrearProducto(ctx, producto)
	}
	return false, uc.gw.ActualizarProducto(ctx, producto)
}

// Eliminar borra un producto. La confirmación previa es responsabilidad de la
// vista (diálogo del navegador).
func (uc *UseCase) Eliminar(ctx context.Context, id int) error {
	return uc.gw.EliminarProducto(ctx, id)
}

// AjusteRapido registra un movimiento de una unidad con fecha de hoy desde
// los controles +/- del catálogo. Una salida con stock cero se rechaza aquí
// mismo, sin viaje al backend.
func (uc *UseCase) AjusteRapido(ctx context.Context, funcionario entity.Funcionario, producto entity.Producto, tipo string) (*entity.AlertaEstoque, error) {
	if tipo != entity.TipoEntrada && tipo != entity.TipoSaida {
		return nil, &domain.ErrorValidacion{Mensaje: "Tipo de movimiento inválido"}
	}
	if tipo == entity.TipoSaida && producto.Cantidad == 0 {
		return nil, domain.ErrStockInsuficiente
	}
	return uc.gw.CrearMovimiento(ctx, entity.NuevoMovimiento{
		ProductoID:    producto.ID,
		FuncionarioID: funcionario.ID,
		Tipo:          tipo,
		Cantidad:      1,
		Fecha:         time.Now().Format("2006-01-02"),
	})
}
