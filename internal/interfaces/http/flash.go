package http

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Los mensajes transitorios (éxito, error, alerta de stock) viajan en una
// cookie de un solo uso: se escriben en la acción, se consumen en el
// siguiente render y desaparecen. Equivale al banner con temporizador de la
// interfaz original.
const cookieFlash = "electrovision_flash"

// Flash mensaje transitorio entre una acción y el siguiente render.
type Flash struct {
	Exito  string                `json:"exito,omitempty"`
	Error  string                `json:"error,omitempty"`
	Alerta *entity.AlertaEstoque `json:"alerta,omitempty"`
}

func escribirFlash(c *fiber.Ctx, f Flash) {
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieFlash,
		Value:    base64.URLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// leerFlash consume el mensaje pendiente: lo devuelve y borra la cookie.
// Un valor corrupto se descarta en silencio.
func leerFlash(c *fiber.Ctx) Flash {
	valor := c.Cookies(cookieFlash)
	if valor == "" {
		return Flash{}
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieFlash,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	b, err := base64.URLEncoding.DecodeString(valor)
	if err != nil {
		return Flash{}
	}
	var f Flash
	if err := json.Unmarshal(b, &f); err != nil {
		return Flash{}
	}
	return f
}
