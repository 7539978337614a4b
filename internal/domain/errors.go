package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrConexion es la forma uniforme de cualquier fallo de transporte o de
	// parseo contra el backend. Nunca se propaga el error crudo de red.
	ErrConexion = errors.New("error de conexión con el servidor")

	ErrSesionInvalida    = errors.New("sesión inválida o corrupta")
	ErrValidacion        = errors.New("entrada inválida")
	ErrStockInsuficiente = errors.New("stock insuficiente")
)

// ErrorValidacion es un fallo de validación local: se detecta antes de tocar
// la red y el backend nunca llega a ser contactado.
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string { return e.Mensaje }

// Is permite errors.Is(err, ErrValidacion) sobre cualquier ErrorValidacion.
func (e *ErrorValidacion) Is(target error) bool { return target == ErrValidacion }

// ErrorBackend representa un fallo de negocio reportado por el backend
// (status:false con mensaje). El mensaje se muestra al usuario tal cual.
type ErrorBackend struct {
	Codigo  int
	Mensaje string
}

func (e *ErrorBackend) Error() string {
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return "error del backend"
}

// MensajeUsuario devuelve el texto a mostrar en pantalla para un error del
// gateway, con un texto alternativo cuando el backend no envió mensaje.
func MensajeUsuario(err error, alternativo string) string {
	if err == nil {
		return ""
	}
	var be *ErrorBackend
	if errors.As(err, &be) && be.Mensaje != "" {
		return be.Mensaje
	}
	if errors.Is(err, ErrConexion) {
		return ErrConexion.Error()
	}
	if alternativo != "" {
		return alternativo
	}
	return err.Error()
}
