package dto

import "github.com/shopspring/decimal"

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRowResponse fila del listado de clientes del módulo de ventas.
type CustomerRowResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CustomerDetailResponse detalle completo de un cliente.
type CustomerDetailResponse struct {
	ID        int64  `json:"id"`
	DNI       string `json:"dni"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
}

// CreateCustomerRequest body para POST /api/sales/customers.
type CreateCustomerRequest struct {
	DNI       string `json:"dni" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// CreateCustomerResponse id del cliente creado.
type CreateCustomerResponse struct {
	ID int64 `json:"id"`
}

// UpdateCustomerRequest body para PUT /api/sales/customers/:id.
// El DNI no se edita: identifica al cliente frente a ventas históricas.
type UpdateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// ── Vehículos ─────────────────────────────────────────────────────────────────

// VehicleRowResponse fila del listado de vehículos del módulo de ventas.
type VehicleRowResponse struct {
	ID        int64  `json:"id"`
	Plate     string `json:"plate"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Color     string `json:"color"`
	EntryDate string `json:"entry_date"` // dd/mm/yyyy
}

// VehicleDetailResponse detalle completo de un vehículo.
type VehicleDetailResponse struct {
	ID           int64  `json:"id"`
	Plate        string `json:"plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	Mileage      int    `json:"mileage"`
	Notes        string `json:"notes"`
	Fuel         string `json:"fuel"`
	Transmission string `json:"transmission"`
	Doors        int    `json:"doors"`
	EntryDate    string `json:"entry_date"`
	Category     string `json:"category"`
}

// ── Propuestas ────────────────────────────────────────────────────────────────

// ProposalRowResponse fila del listado de propuestas.
type ProposalRowResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Vehicle  string `json:"vehicle"`
	Customer string `json:"customer"`
	Price    string `json:"price"`
	Status   string `json:"status"`
}

// ProposalDetailResponse detalle de una propuesta.
type ProposalDetailResponse struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	CustomerID   int64           `json:"customer_id"`
	VehicleID    int64           `json:"vehicle_id"`
	CustomerName string          `json:"customer_name"`
	Vehicle      string          `json:"vehicle"`
	Price        decimal.Decimal `json:"price"`
	Notes        string          `json:"notes"`
	Status       string          `json:"status"`
	Editable     bool            `json:"editable"` // false una vez ACCEPTED
}

// CreateProposalRequest body para POST /api/sales/proposals.
type CreateProposalRequest struct {
	CustomerID int64           `json:"customer_id" validate:"required,gt=0"`
	VehicleID  int64           `json:"vehicle_id" validate:"required,gt=0"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	Notes      string          `json:"notes"`
}

// CreateProposalResponse id de la propuesta creada (estado ACTIVE).
type CreateProposalResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// UpdateProposalRequest body para PUT /api/sales/proposals/:id.
// ACCEPTED nunca se fija por esta vía: solo el endpoint de aceptación.
type UpdateProposalRequest struct {
	Price  decimal.Decimal `json:"price" validate:"required"`
	Notes  string          `json:"notes"`
	Status string          `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// AcceptProposalRequest body para POST /api/sales/proposals/:id/accept.
// SaleDate en formato 2006-01-02; vacío = hoy.
type AcceptProposalRequest struct {
	SaleDate string `json:"sale_date" validate:"omitempty,datetime=2006-01-02"`
}

// AcceptProposalResponse id de la venta creada.
type AcceptProposalResponse struct {
	SaleID int64 `json:"sale_id"`
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleRowResponse fila del listado de ventas.
type SaleRowResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Vehicle  string `json:"vehicle"`
	Customer string `json:"customer"`
	Price    string `json:"price"`
	SaleDate string `json:"sale_date"` // dd/mm/yyyy, "-" si no hay fecha
}

// SaleDetailResponse detalle de una venta.
type SaleDetailResponse struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Price       decimal.Decimal `json:"price"`
	SaleDate    string          `json:"sale_date"`
	Notes       string          `json:"notes"`
	Customer    string          `json:"customer"`
	CustomerDNI string          `json:"customer_dni"`
	Vehicle     string          `json:"vehicle"`
	Plate       string          `json:"plate"`
	Seller      string          `json:"seller"`
	Dealership  string          `json:"dealership"`
}
