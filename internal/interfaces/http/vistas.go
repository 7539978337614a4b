package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/application/catalogo"
	"github.com/jhoicas/electrovision-web/internal/application/estoque"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// datosBase campos comunes a todas las vistas: identidad, tema y los
// mensajes transitorios pendientes.
type datosBase struct {
	Titulo  string
	Usuario *entity.Funcionario
	Tema    string
	Error   string
	Exito   string
	Alerta  *entity.AlertaEstoque
}

// baseVista arma los datos comunes de una vista consumiendo el flash pendiente.
func baseVista(c *fiber.Ctx, titulo string) datosBase {
	flash := leerFlash(c)
	return datosBase{
		Titulo:  titulo,
		Usuario: Usuario(c),
		Tema:    Tema(c),
		Error:   flash.Error,
		Exito:   flash.Exito,
		Alerta:  flash.Alerta,
	}
}

type datosLogin struct {
	datosBase
	Chave string
}

type datosPanel struct {
	datosBase
	Movimientos []entity.Movimiento
}

type datosCatalogo struct {
	datosBase
	Productos []entity.Producto
	Termino   string
}

type datosFormularioProducto struct {
	datosBase
	Formulario catalogo.FormularioProducto
	Editando   bool
}

type datosEstoque struct {
	datosBase
	Productos  []entity.Producto
	Formulario estoque.FormularioMovimiento
}
