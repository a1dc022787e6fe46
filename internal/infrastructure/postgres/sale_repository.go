package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// ListForSales lista ventas, más recientes primero.
func (r *SaleRepo) ListForSales(ctx context.Context) ([]entity.SaleSummary, error) {
	query := `
		SELECT s.id,
		       concat_ws(' ', v.brand, v.model, v.color, v.year::text),
		       concat(c.first_name, ' ', c.last_name),
		       s.price, s.sale_date
		FROM sale s
		JOIN vehicle v ON v.id = s.vehicle_id
		JOIN customer c ON c.id = s.customer_id
		ORDER BY s.sale_date DESC, s.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleSummary
	for rows.Next() {
		var it entity.SaleSummary
		if err := rows.Scan(&it.ID, &it.VehicleText, &it.CustomerName, &it.Price, &it.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetDetail obtiene el detalle de una venta con vendedor y concesionario.
func (r *SaleRepo) GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error) {
	query := `
		SELECT s.id, s.price, s.sale_date, COALESCE(s.notes, ''),
		       concat(c.first_name, ' ', c.last_name), c.dni,
		       concat_ws(' ', v.brand, v.model, v.color, v.year::text),
		       v.plate,
		       COALESCE(u.full_name, ''), COALESCE(d.name, '')
		FROM sale s
		JOIN customer c ON c.id = s.customer_id
		JOIN vehicle v ON v.id = s.vehicle_id
		LEFT JOIN "user" u ON u.id = s.seller_user_id
		LEFT JOIN dealership d ON d.id = s.dealership_id
		WHERE s.id = $1`
	var d entity.SaleDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Price, &d.SaleDate, &d.Notes,
		&d.CustomerName, &d.CustomerDNI,
		&d.VehicleText, &d.VehiclePlate,
		&d.SellerName, &d.DealershipName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &d, nil
}

// CreateFromProposal inserta la venta copiando todos los datos de la
// propuesta en un único INSERT ... SELECT. Cero filas -> la propuesta no
// existe; proposal_id UNIQUE -> la propuesta ya tenía venta.
func (r *SaleRepo) CreateFromProposal(ctx context.Context, proposalID int64, saleDate time.Time) (int64, error) {
	query := `
		INSERT INTO sale
			(proposal_id, customer_id, vehicle_id, seller_user_id, dealership_id, price, sale_date, notes)
		SELECT sp.id, sp.customer_id, sp.vehicle_id, sp.seller_user_id,
		       sp.dealership_id, sp.price, $1, sp.notes
		FROM sale_proposal sp
		WHERE sp.id = $2
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, saleDate, proposalID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("insert sale from proposal: %w", err)
	}
	return id, nil
}
