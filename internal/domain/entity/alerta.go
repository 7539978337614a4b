package entity

// AlertaEstoque es el aviso de umbral que el backend puede adjuntar a la
// respuesta de alta de un movimiento. Es transitorio: se muestra una vez y
// se descarta, nunca se persiste.
type AlertaEstoque struct {
	Mensaje        string
	Producto       string
	CantidadActual int
	Estado         string
}
