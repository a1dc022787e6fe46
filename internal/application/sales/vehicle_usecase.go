package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// VehicleUseCase lecturas de vehículos para el módulo de ventas.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// List lista vehículos ordenados por fecha de ingreso descendente.
func (uc *VehicleUseCase) List(ctx context.Context) ([]dto.VehicleRowResponse, error) {
	rows, err := uc.repo.ListForSales(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleRowResponse, 0, len(rows))
	for _, v := range rows {
		out = append(out, dto.VehicleRowResponse{
			ID:        v.ID,
			Plate:     dto.SafeText(v.Plate),
			Brand:     dto.SafeText(v.Brand),
			Model:     dto.SafeText(v.Model),
			Year:      v.Year,
			Color:     dto.SafeText(v.Color),
			EntryDate: formatDate(&v.EntryDate),
		})
	}
	return out, nil
}

// GetDetail devuelve el detalle de un vehículo con su categoría.
func (uc *VehicleUseCase) GetDetail(ctx context.Context, id int64) (*dto.VehicleDetailResponse, error) {
	v, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.VehicleDetailResponse{
		ID:           v.ID,
		Plate:        dto.SafeText(v.Plate),
		Brand:        dto.SafeText(v.Brand),
		Model:        dto.SafeText(v.Model),
		Year:         v.Year,
		Color:        dto.SafeText(v.Color),
		Mileage:      v.Mileage,
		Notes:        v.Notes,
		Fuel:         dto.SafeText(v.Fuel),
		Transmission: dto.SafeText(v.Transmission),
		Doors:        v.Doors,
		EntryDate:    formatDate(&v.EntryDate),
		Category:     dto.SafeText(v.CategoryName),
	}, nil
}

// formatDate formatea una fecha como dd/mm/yyyy, "-" si es nula o cero.
func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
