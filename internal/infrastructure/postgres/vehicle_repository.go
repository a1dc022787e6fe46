package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (solo lectura).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// ListForCombo lista vehículos como "marca modelo".
func (r *VehicleRepo) ListForCombo(ctx context.Context) ([]entity.IDName, error) {
	query := `
		SELECT v.id, concat_ws(' ', v.brand, v.model)
		FROM vehicle v
		ORDER BY v.brand, v.model`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles for combo: %w", err)
	}
	defer rows.Close()

	var items []entity.IDName
	for rows.Next() {
		var it entity.IDName
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListForSales lista vehículos, más recientes primero por fecha de ingreso.
func (r *VehicleRepo) ListForSales(ctx context.Context) ([]entity.VehicleSummary, error) {
	query := `
		SELECT v.id, v.plate, v.brand, v.model, v.year,
		       COALESCE(v.color, ''), v.entry_date
		FROM vehicle v
		ORDER BY v.entry_date DESC, v.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var items []entity.VehicleSummary
	for rows.Next() {
		var it entity.VehicleSummary
		if err := rows.Scan(&it.ID, &it.Plate, &it.Brand, &it.Model, &it.Year, &it.Color, &it.EntryDate); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetDetail obtiene el detalle completo de un vehículo con su categoría.
func (r *VehicleRepo) GetDetail(ctx context.Context, id int64) (*entity.VehicleDetail, error) {
	query := `
		SELECT v.id, v.plate, v.brand, v.model, v.year,
		       COALESCE(v.color, ''), COALESCE(v.mileage, 0),
		       COALESCE(v.notes, ''), COALESCE(v.fuel, ''),
		       COALESCE(v.transmission, ''), COALESCE(v.doors, 0),
		       v.entry_date, COALESCE(vc.name, '')
		FROM vehicle v
		LEFT JOIN vehicle_category vc ON vc.id = v.category_id
		WHERE v.id = $1`
	var v entity.VehicleDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Plate, &v.Brand, &v.Model, &v.Year,
		&v.Color, &v.Mileage, &v.Notes, &v.Fuel,
		&v.Transmission, &v.Doors, &v.EntryDate, &v.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}
