package electrovision

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Login autentica la clave de acceso contra el backend. La identidad puede
// venir bajo la clave funcionario o bajo dados; ambas se aceptan.
func (c *Client) Login(ctx context.Context, chave string) (*entity.Funcionario, error) {
	r, err := c.exigirOK(ctx, http.MethodPost, "/login", loginPayload{Chave: chave})
	if err != nil {
		return nil, err
	}
	raw := r.payload(r.Funcionario)
	if !presente(raw) {
		// status:true sin identidad es una respuesta malformada del backend
		return nil, &domain.ErrorBackend{Codigo: r.codigoHTTP, Mensaje: r.mensaje()}
	}
	var w funcionarioWire
	if err := json.Unmarshal(raw, &w); err != nil {
		c.log.Warn().Err(err).Msg("decodificar funcionario del login")
		return nil, domain.ErrConexion
	}
	f := w.entidad()
	return &f, nil
}
