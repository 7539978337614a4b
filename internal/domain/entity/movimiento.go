package entity

import (
	"strings"
	"time"
)

// Tipos de movimiento. Los valores son los que espera el backend legado
// (vocabulario en portugués del contrato original).
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Movimiento es una transacción de stock ya registrada, tal como la lista el
// backend. Solo lectura desde este front end: nunca se edita un movimiento.
type Movimiento struct {
	ID          int
	Fecha       string // como la envía el backend (ISO o yyyy-mm-dd)
	Resumen     string
	Funcionario string // nombre del empleado que lo registró
}

// EsEntrada indica si el resumen corresponde a una entrada de stock.
// El primer token del resumen ("ENTRADA ...") decide el color en pantalla.
func (m Movimiento) EsEntrada() bool {
	return strings.HasPrefix(m.Resumen, "ENTRADA")
}

// FechaCorta formatea la fecha del movimiento como dd/mm/aaaa.
// Si el valor del backend no es parseable se devuelve tal cual.
func (m Movimiento) FechaCorta() string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, m.Fecha); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return m.Fecha
}

// NuevoMovimiento es el payload de alta de un movimiento.
type NuevoMovimiento struct {
	ProductoID    int
	FuncionarioID int
	Tipo          string // TipoEntrada | TipoSaida
	Cantidad      int    // siempre positivo; el tipo define el signo
	Fecha         string // yyyy-mm-dd
}
