package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// Las ventas nunca se actualizan ni se borran desde esta aplicación.
type SaleRepository interface {
	// ListForSales lista todas las ventas, más recientes primero.
	ListForSales(ctx context.Context) ([]entity.SaleSummary, error)

	// GetDetail devuelve el detalle completo de una venta (incluye vendedor
	// y concesionario, para la pantalla de detalle y el recibo PDF), o nil.
	GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error)

	// CreateFromProposal inserta la venta copiando cliente, vehículo,
	// vendedor, concesionario, precio y notas de la propuesta, con la fecha
	// indicada. Devuelve domain.ErrConflict si la propuesta ya tiene venta
	// (proposal_id UNIQUE) y domain.ErrNotFound si la propuesta no existe.
	CreateFromProposal(ctx context.Context, proposalID int64, saleDate time.Time) (int64, error)
}
