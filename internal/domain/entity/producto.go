package entity

// Producto del catálogo. Cantidad es siempre el último valor devuelto por el
// backend: el cliente nunca la incrementa ni decrementa localmente, toda
// mutación pasa por un movimiento y una recarga del catálogo.
type Producto struct {
	ID            int
	Nombre        string
	Especificacion string
	Cantidad      int
	Estante       string // ubicación física (prateleira en el backend)
}
