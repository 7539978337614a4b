package electrovision

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/electrovision-web/internal/domain/entity"
)

// respuesta es el sobre común de todas las respuestas del backend legado.
// El payload puede llegar bajo la clave específica del recurso (produtos,
// funcionario, movimentacoes) o bajo la clave genérica dados: hay una
// migración de API a medio camino y el contrato obliga a leer ambas.
// No colapsar a una sola clave sin confirmar el contrato con el backend.
type respuesta struct {
	Status        bool            `json:"status"`
	CodigoStatus  int             `json:"codigo_status"`
	Message       string          `json:"message"`
	Mensagem      string          `json:"mensagem"`
	Dados         json.RawMessage `json:"dados"`
	Produtos      json.RawMessage `json:"produtos"`
	Produto       json.RawMessage `json:"produto"`
	Funcionario   json.RawMessage `json:"funcionario"`
	Funcionarios  json.RawMessage `json:"funcionarios"`
	Movimentacoes json.RawMessage `json:"movimentacoes"`
	AlertaEstoque *alertaWire     `json:"alerta_estoque"`

	codigoHTTP int // status HTTP de la respuesta, fuera del sobre JSON
}

// mensaje devuelve el texto humano del sobre, con fallback entre las dos
// claves que el backend usa indistintamente.
func (r *respuesta) mensaje() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Mensagem
}

// payload devuelve el cuerpo útil: la clave específica si vino, dados si no.
func (r *respuesta) payload(especifica json.RawMessage) json.RawMessage {
	if presente(especifica) {
		return especifica
	}
	return r.Dados
}

func presente(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// ── Formas de cable del backend (claves en portugués, contrato legado) ──────

type productoWire struct {
	IDProduto     int    `json:"id_produto"`
	ID            int    `json:"id"`
	Nome          string `json:"nome"`
	Especificacao string `json:"especificacao"`
	Qtd           int    `json:"qtd"`
	Prateleira    string `json:"prateleira"`
}

func (w productoWire) entidad() entity.Producto {
	id := w.IDProduto
	if id == 0 {
		id = w.ID
	}
	return entity.Producto{
		ID:             id,
		Nombre:         w.Nome,
		Especificacion: w.Especificacao,
		Cantidad:       w.Qtd,
		Estante:        w.Prateleira,
	}
}

type funcionarioWire struct {
	IDFuncionario int    `json:"id_funcionario"`
	ID            int    `json:"id"`
	Nome          string `json:"nome"`
	Cargo         string `json:"cargo"`
}

func (w funcionarioWire) entidad() entity.Funcionario {
	id := w.IDFuncionario
	if id == 0 {
		id = w.ID
	}
	return entity.Funcionario{ID: id, Nombre: w.Nome, Rol: w.Cargo}
}

type movimientoWire struct {
	IDHistorico     int    `json:"id_historico"`
	ID              int    `json:"id"`
	Data            string `json:"data"`
	Resumo          string `json:"resumo"`
	FuncionarioNome string `json:"funcionario_nome"`
}

func (w movimientoWire) entidad() entity.Movimiento {
	id := w.IDHistorico
	if id == 0 {
		id = w.ID
	}
	return entity.Movimiento{
		ID:          id,
		Fecha:       w.Data,
		Resumen:     w.Resumo,
		Funcionario: w.FuncionarioNome,
	}
}

type alertaWire struct {
	Message        string `json:"message"`
	Produto        string `json:"produto"`
	QuantidadeAtual int   `json:"quantidade_atual"`
	Status         string `json:"status"`
}

func (w *alertaWire) entidad() *entity.AlertaEstoque {
	if w == nil {
		return nil
	}
	return &entity.AlertaEstoque{
		Mensaje:        w.Message,
		Producto:       w.Produto,
		CantidadActual: w.QuantidadeAtual,
		Estado:         w.Status,
	}
}

// Payloads de escritura hacia el backend.

type productoPayload struct {
	Nome          string `json:"nome"`
	Especificacao string `json:"especificacao"`
	Qtd           int    `json:"qtd"`
	Prateleira    string `json:"prateleira"`
}

type movimientoPayload struct {
	IDProduto     int    `json:"id_produto"`
	IDFuncionario int    `json:"id_funcionario"`
	Tipo          string `json:"tipo"`
	Quantidade    int    `json:"quantidade"`
	Data          string `json:"data"`
}

type loginPayload struct {
	Chave string `json:"chave"`
}
