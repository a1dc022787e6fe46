package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación de ProposalRepository (usable con pool o tx).
type ProposalRepo struct {
	q Querier
}

// NewProposalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProposalRepository(q Querier) *ProposalRepo {
	return &ProposalRepo{q: q}
}

// ListForSales lista propuestas con textos de cliente y vehículo.
func (r *ProposalRepo) ListForSales(ctx context.Context) ([]entity.ProposalSummary, error) {
	query := `
		SELECT sp.id,
		       concat_ws(' ', v.brand, v.model, v.color, v.year::text),
		       concat(c.first_name, ' ', c.last_name),
		       sp.price, sp.status
		FROM sale_proposal sp
		JOIN vehicle v ON v.id = sp.vehicle_id
		JOIN customer c ON c.id = sp.customer_id
		ORDER BY sp.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var items []entity.ProposalSummary
	for rows.Next() {
		var it entity.ProposalSummary
		if err := rows.Scan(&it.ID, &it.VehicleText, &it.CustomerName, &it.Price, &it.Status); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetDetail obtiene el detalle de una propuesta por ID.
func (r *ProposalRepo) GetDetail(ctx context.Context, id int64) (*entity.ProposalDetail, error) {
	query := `
		SELECT sp.id, sp.customer_id, sp.vehicle_id,
		       concat(c.first_name, ' ', c.last_name),
		       concat_ws(' ', v.brand, v.model, v.color, v.year::text),
		       sp.price, COALESCE(sp.notes, ''), sp.status
		FROM sale_proposal sp
		JOIN customer c ON c.id = sp.customer_id
		JOIN vehicle v ON v.id = sp.vehicle_id
		WHERE sp.id = $1`
	var d entity.ProposalDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CustomerID, &d.VehicleID,
		&d.CustomerName, &d.VehicleText,
		&d.Price, &d.Notes, &d.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return &d, nil
}

// Insert crea la propuesta en ACTIVE.
func (r *ProposalRepo) Insert(ctx context.Context, customerID, vehicleID, sellerUserID, dealershipID int64, price decimal.Decimal, notes string) (int64, error) {
	query := `
		INSERT INTO sale_proposal
			(customer_id, vehicle_id, seller_user_id, dealership_id, price, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'ACTIVE')
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, customerID, vehicleID, sellerUserID, dealershipID, price, emptyToNull(notes)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert proposal: %w", err)
	}
	return id, nil
}

// Update actualiza precio, notas y estado.
func (r *ProposalRepo) Update(ctx context.Context, id int64, price decimal.Decimal, notes, status string) error {
	query := `
		UPDATE sale_proposal
		SET price = $2, notes = $3, status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, price, emptyToNull(notes), status)
	if err != nil {
		return fmt.Errorf("update proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus actualiza solo el estado (p. ej. ACCEPTED al vender).
func (r *ProposalRepo) SetStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE sale_proposal SET status = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("set proposal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsSold indica si alguna venta referencia la propuesta.
func (r *ProposalRepo) IsSold(ctx context.Context, id int64) (bool, error) {
	query := `SELECT 1 FROM sale s WHERE s.proposal_id = $1 LIMIT 1`
	var one int
	err := r.q.QueryRow(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check proposal sold: %w", err)
	}
	return true, nil
}

// Delete borra la propuesta. Si una venta llegó a referenciarla entre el
// chequeo y el borrado, la FK lo convierte en conflicto.
func (r *ProposalRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM sale_proposal WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrConflict
		}
		return false, fmt.Errorf("delete proposal: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
