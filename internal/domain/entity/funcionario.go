package entity

// Funcionario es el empleado autenticado. El backend legado lo entrega bajo
// dos posibles claves de identificador (id_funcionario o id); aquí ya llega
// normalizado a un único campo ID.
type Funcionario struct {
	ID     int
	Nombre string
	Rol    string // opcional; el backend no siempre lo envía
}
