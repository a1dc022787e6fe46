package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// ProposalRepository define el puerto de persistencia para propuestas de venta.
type ProposalRepository interface {
	// ListForSales lista todas las propuestas con textos de cliente y
	// vehículo, más recientes primero.
	ListForSales(ctx context.Context) ([]entity.ProposalSummary, error)

	// GetDetail devuelve el detalle de una propuesta por id, o nil.
	GetDetail(ctx context.Context, id int64) (*entity.ProposalDetail, error)

	// Insert crea una propuesta en estado ACTIVE y devuelve su id.
	Insert(ctx context.Context, customerID, vehicleID, sellerUserID, dealershipID int64, price decimal.Decimal, notes string) (int64, error)

	// Update actualiza precio, notas y estado de una propuesta.
	Update(ctx context.Context, id int64, price decimal.Decimal, notes, status string) error

	// SetStatus actualiza solo el estado.
	SetStatus(ctx context.Context, id int64, status string) error

	// IsSold indica si ya existe una venta que referencia la propuesta.
	IsSold(ctx context.Context, id int64) (bool, error)

	// Delete borra la propuesta. Devuelve false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
