package electrovision

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/electrovision-web/internal/domain"
	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// Funcionarios devuelve la lista de empleados.
func (c *Client) Funcionarios(ctx context.Context) ([]entity.Funcionario, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, "/funcionarios", nil)
	if err != nil {
		return nil, err
	}
	raw := r.payload(r.Funcionarios)
	if !presente(raw) {
		return []entity.Funcionario{}, nil
	}
	var wires []funcionarioWire
	if err := json.Unmarshal(raw, &wires); err != nil {
		c.log.Warn().Err(err).Msg("decodificar lista de funcionarios")
		return nil, domain.ErrConexion
	}
	funcionarios := make([]entity.Funcionario, 0, len(wires))
	for _, w := range wires {
		funcionarios = append(funcionarios, w.entidad())
	}
	return funcionarios, nil
}

// Funcionario devuelve un empleado por ID.
func (c *Client) Funcionario(ctx context.Context, id int) (*entity.Funcionario, error) {
	r, err := c.exigirOK(ctx, http.MethodGet, fmt.Sprintf("/funcionario/%d", id), nil)
	if err != nil {
		return nil, err
	}
	raw := r.payload(r.Funcionario)
	if !presente(raw) {
		return nil, &domain.ErrorBackend{Codigo: r.codigoHTTP, Mensaje: r.mensaje()}
	}
	var w funcionarioWire
	if err := json.Unmarshal(raw, &w); err != nil {
		c.log.Warn().Err(err).Msg("decodificar funcionario")
		return nil, domain.ErrConexion
	}
	f := w.entidad()
	return &f, nil
}

type funcionarioPayload struct {
	Nome  string `json:"nome"`
	Cargo string `json:"cargo,omitempty"`
}

// CrearFuncionario da de alta un empleado.
func (c *Client) CrearFuncionario(ctx context.Context, f entity.Funcionario) error {
	_, err := c.exigirOK(ctx, http.MethodPost, "/funcionario", funcionarioPayload{
		Nome: f.Nombre, Cargo: f.Rol,
	})
	return err
}

// ActualizarFuncionario modifica un empleado existente.
func (c *Client) ActualizarFuncionario(ctx context.Context, f entity.Funcionario) error {
	_, err := c.exigirOK(ctx, http.MethodPut, fmt.Sprintf("/funcionario/%d", f.ID), funcionarioPayload{
		Nome: f.Nombre, Cargo: f.Rol,
	})
	return err
}

// EliminarFuncionario borra un empleado por ID.
func (c *Client) EliminarFuncionario(ctx context.Context, id int) error {
	_, err := c.exigirOK(ctx, http.MethodDelete, fmt.Sprintf("/funcionario/%d", id), nil)
	return err
}
