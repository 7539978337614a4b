package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/electrovision-web/internal/domain/entity"
	"github.com/jhoicas/electrovision-web/internal/session"
	"github.com/jhoicas/electrovision-web/pkg/logger"
)

// Locals keys en Fiber.
const (
	localFuncionario = "funcionario"
	localRequestID   = "request_id"
)

// cookieTema preferencia de tema de página ("green" o "red").
const cookieTema = "electrovision_tema"

// SesionMiddleware restaura la sesión desde la cookie en cada petición.
// Una cookie corrupta se borra y la petición continúa como anónima: la
// corrupción de sesión nunca es un error visible para el usuario.
func SesionMiddleware(sesiones *session.Store, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		funcionario, err := sesiones.Restaurar(c.Cookies(session.CookieName))
		if err != nil {
			log.Warn().Err(err).Msg("cookie de sesión corrupta, se descarta")
			borrarCookie(c, session.CookieName)
		}
		if funcionario != nil {
			c.Locals(localFuncionario, funcionario)
		}
		return c.Next()
	}
}

// Usuario devuelve el empleado autenticado de la petición, o nil.
func Usuario(c *fiber.Ctx) *entity.Funcionario {
	f, _ := c.Locals(localFuncionario).(*entity.Funcionario)
	return f
}

// RequiereSesion redirige a /login las peticiones sin sesión.
func RequiereSesion(c *fiber.Ctx) error {
	if Usuario(c) == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Next()
}

// SoloAnonimo redirige al dashboard a quien ya tiene sesión.
func SoloAnonimo(c *fiber.Ctx) error {
	if Usuario(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Next()
}

// Tema devuelve la preferencia de tema de la petición; green por defecto.
func Tema(c *fiber.Ctx) string {
	if c.Cookies(cookieTema) == "red" {
		return "red"
	}
	return "green"
}

// CambiarTema alterna la preferencia de tema y vuelve a la página anterior.
// Independiente de toda la lógica de negocio.
func CambiarTema(c *fiber.Ctx) error {
	nuevo := "red"
	if Tema(c) == "red" {
		nuevo = "green"
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieTema,
		Value:    nuevo,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	destino := c.Get(fiber.HeaderReferer)
	if destino == "" {
		destino = "/dashboard"
	}
	return c.Redirect(destino, fiber.StatusFound)
}

// LoggingMiddleware registra cada petición con un identificador propio.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		c.Locals(localRequestID, uuid.NewString())

		err := c.Next()

		log.Info().
			Str("request_id", c.Locals(localRequestID).(string)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}

func borrarCookie(c *fiber.Ctx, nombre string) {
	c.Cookie(&fiber.Cookie{
		Name:     nombre,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
