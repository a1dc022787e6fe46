package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta concretada. Se crea exactamente una vez por
// propuesta aceptada (sale.proposal_id es UNIQUE) y nunca se modifica ni
// se borra desde esta aplicación.
type Sale struct {
	ID           int64
	ProposalID   int64
	CustomerID   int64
	VehicleID    int64
	SellerUserID int64
	DealershipID int64
	Price        decimal.Decimal
	SaleDate     time.Time
	Notes        string
}

// SaleSummary fila del listado de ventas del módulo de ventas.
type SaleSummary struct {
	ID           int64
	VehicleText  string
	CustomerName string
	Price        decimal.Decimal
	SaleDate     *time.Time
}

// SaleDetail detalle de una venta para la pantalla de detalle y el recibo PDF.
type SaleDetail struct {
	ID             int64
	Price          decimal.Decimal
	SaleDate       *time.Time
	Notes          string
	CustomerName   string
	CustomerDNI    string
	VehicleText    string
	VehiclePlate   string
	SellerName     string
	DealershipName string
}
