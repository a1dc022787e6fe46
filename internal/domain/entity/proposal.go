package entity

import "github.com/shopspring/decimal"

// Estados de una propuesta de venta. ACCEPTED es irreversible: se fija al
// crear la venta y la propuesta deja de ser editable y borrable.
const (
	ProposalStatusActive   = "ACTIVE"
	ProposalStatusAccepted = "ACCEPTED"
)

// SaleProposal representa una oferta de un vehículo a un cliente por un precio.
type SaleProposal struct {
	ID           int64
	CustomerID   int64
	VehicleID    int64
	SellerUserID int64
	DealershipID int64
	Price        decimal.Decimal
	Notes        string
	Status       string
}

// ProposalSummary fila del listado de propuestas del módulo de ventas.
type ProposalSummary struct {
	ID           int64
	VehicleText  string
	CustomerName string
	Price        decimal.Decimal
	Status       string
}

// ProposalDetail detalle de una propuesta con textos de cliente y vehículo.
type ProposalDetail struct {
	ID           int64
	CustomerID   int64
	VehicleID    int64
	CustomerName string
	VehicleText  string
	Price        decimal.Decimal
	Notes        string
	Status       string
}
