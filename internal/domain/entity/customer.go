package entity

// Customer representa un cliente del concesionario.
// El borrado es lógico (active = false) para no romper las FK de
// reparaciones y ventas históricas.
type Customer struct {
	ID        int64
	DNI       string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Active    bool
}

// CustomerSummary fila del listado de clientes del módulo de ventas.
type CustomerSummary struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
