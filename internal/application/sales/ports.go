package sales

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// TxRunner ejecuta la aceptación de propuesta dentro de una transacción:
// insertar la venta y marcar la propuesta ACCEPTED deben confirmar juntos.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		proposals repository.ProposalRepository,
		salesRepo repository.SaleRepository,
	) error) error
}

// SaleReceiptGenerator genera el recibo PDF de una venta.
// Lo implementa infrastructure/pdf con Maroto.
type SaleReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.SaleDetail) ([]byte, error)
}
