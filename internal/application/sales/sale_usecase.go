package sales

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// SaleUseCase lecturas de ventas y generación del recibo PDF.
// Las ventas solo nacen por aceptación de propuesta; aquí no hay escritura.
type SaleUseCase struct {
	repo repository.SaleRepository
	pdf  SaleReceiptGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, pdf SaleReceiptGenerator) *SaleUseCase {
	return &SaleUseCase{repo: repo, pdf: pdf}
}

// List lista todas las ventas, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleRowResponse, error) {
	rows, err := uc.repo.ListForSales(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleRowResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SaleRowResponse{
			ID:       s.ID,
			Code:     dto.DisplayCode(s.ID),
			Vehicle:  dto.SafeText(s.VehicleText),
			Customer: dto.SafeText(s.CustomerName),
			Price:    dto.FormatPrice(s.Price),
			SaleDate: formatDate(s.SaleDate),
		})
	}
	return out, nil
}

// GetDetail devuelve el detalle completo de una venta.
func (uc *SaleUseCase) GetDetail(ctx context.Context, id int64) (*dto.SaleDetailResponse, error) {
	s, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SaleDetailResponse{
		ID:          s.ID,
		Code:        dto.DisplayCode(s.ID),
		Price:       s.Price,
		SaleDate:    formatDate(s.SaleDate),
		Notes:       s.Notes,
		Customer:    dto.SafeText(s.CustomerName),
		CustomerDNI: dto.SafeText(s.CustomerDNI),
		Vehicle:     dto.SafeText(s.VehicleText),
		Plate:       dto.SafeText(s.VehiclePlate),
		Seller:      dto.SafeText(s.SellerName),
		Dealership:  dto.SafeText(s.DealershipName),
	}, nil
}

// ReceiptPDF genera el recibo PDF de la venta y devuelve sus bytes.
func (uc *SaleUseCase) ReceiptPDF(ctx context.Context, id int64) ([]byte, error) {
	s, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReceipt(ctx, s)
}
