package entity

// EstadoStock clasificación visual del nivel de stock de un producto.
// Puramente de presentación; el backend es quien decide los umbrales de alerta.
type EstadoStock struct {
	Etiqueta string
	Color    string
}

// Umbral por debajo del cual el stock se considera bajo.
const umbralStockBajo = 5

// ClasificarStock devuelve la etiqueta y el color para una cantidad dada:
// 0 agotado, 1..4 stock bajo, 5 o más normal.
func ClasificarStock(cantidad int) EstadoStock {
	switch {
	case cantidad == 0:
		return EstadoStock{Etiqueta: "AGOTADO", Color: "#e74c3c"}
	case cantidad < umbralStockBajo:
		return EstadoStock{Etiqueta: "STOCK BAJO", Color: "#f39c12"}
	default:
		return EstadoStock{Etiqueta: "NORMAL", Color: "#27ae60"}
	}
}
