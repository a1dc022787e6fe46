package repository

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// VehicleRepository define el puerto de lectura para vehículos.
// Los vehículos no se crean ni modifican desde esta aplicación.
type VehicleRepository interface {
	// ListForCombo lista vehículos en formato id/nombre ("marca modelo").
	ListForCombo(ctx context.Context) ([]entity.IDName, error)

	// ListForSales lista vehículos para la tabla del módulo de ventas,
	// ordenados por fecha de ingreso descendente.
	ListForSales(ctx context.Context) ([]entity.VehicleSummary, error)

	// GetDetail devuelve el detalle de un vehículo con su categoría, o nil.
	GetDetail(ctx context.Context, id int64) (*entity.VehicleDetail, error)
}
