package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/domain/entity"
	"github.com/jhoicas/electrovision-web/web"
)

// Renderer ejecuta las plantillas HTML embebidas.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parsea todas las plantillas una sola vez al arrancar.
func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("vistas").Funcs(template.FuncMap{
		"clasificar": entity.ClasificarStock,
	}).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

// Render ejecuta la plantilla indicada y envía el HTML resultante.
// Se renderiza a un buffer para no enviar medias páginas ante un error.
func (r *Renderer) Render(c *fiber.Ctx, nombre string, datos any) error {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, nombre, datos); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
