// Package electrovision implementa el cliente HTTP hacia el backend REST
// ElectroVision. Es la única frontera de red del front end: normaliza aquí
// los dos vicios del contrato legado (payload bajo dos posibles claves e
// identificadores bajo dos posibles nombres) para que el resto del código
// trabaje con entidades canónicas.
package electrovision

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/pkg/logger"
)

// Client cliente del backend ElectroVision. Usa net/http de la librería
// estándar; no requiere SDK.
type Client struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente. baseURL es la dirección fija del backend
// (ej. http://localhost:3030) y prefix el prefijo versionado de la API
// (ej. /v1/electrovision).
func New(baseURL, prefix string, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		prefix:  prefix,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		log: log,
	}
}

// request ejecuta una llamada al backend y decodifica el sobre de respuesta.
// Cualquier fallo de transporte o de parseo se convierte en domain.ErrConexion:
// el error crudo se registra en el log pero nunca sube a las vistas.
// Un cuerpo vacío se trata como objeto vacío, no como error.
func (c *Client) request(ctx context.Context, method, endpoint string, payload any) (*respuesta, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			c.log.Error().Err(err).Str("endpoint", endpoint).Msg("serializar request al backend")
			return nil, domain.ErrConexion
		}
		body = bytes.NewReader(b)
	}

	url := c.baseURL + c.prefix + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Msg("crear HTTP request")
		return nil, domain.ErrConexion
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("url", url).Msg("backend inaccesible")
		return nil, domain.ErrConexion
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("leer respuesta del backend")
		return nil, domain.ErrConexion
	}

	r := &respuesta{codigoHTTP: resp.StatusCode}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, r); err != nil {
			c.log.Warn().Err(err).Str("url", url).Msg("cuerpo no parseable del backend")
			return nil, domain.ErrConexion
		}
	}

	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("http", resp.StatusCode).
		Bool("status", r.Status).
		Msg("respuesta del backend")

	return r, nil
}

// errorNegocio construye el error para una respuesta con status:false.
func (r *respuesta) errorNegocio() error {
	codigo := r.CodigoStatus
	if codigo == 0 {
		codigo = r.codigoHTTP
	}
	return &domain.ErrorBackend{Codigo: codigo, Mensaje: r.mensaje()}
}

// get y post/put/delete con decodificación del sobre y chequeo de status.
func (c *Client) exigirOK(ctx context.Context, method, endpoint string, payload any) (*respuesta, error) {
	r, err := c.request(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}
	if !r.Status {
		return nil, r.errorNegocio()
	}
	return r, nil
}
