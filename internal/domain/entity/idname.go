package entity

// IDName par id/nombre para poblar combos del cliente
// (clientes, vehículos y mecánicos al registrar una reparación).
type IDName struct {
	ID   int64
	Name string
}
