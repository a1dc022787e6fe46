package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// ListForCombo lista clientes activos como "Nombre Apellido (DNI)".
func (r *CustomerRepo) ListForCombo(ctx context.Context) ([]entity.IDName, error) {
	query := `
		SELECT c.id, concat(c.first_name, ' ', c.last_name, ' (', c.dni, ')')
		FROM customer c
		WHERE c.active
		ORDER BY c.first_name, c.last_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers for combo: %w", err)
	}
	defer rows.Close()

	var items []entity.IDName
	for rows.Next() {
		var it entity.IDName
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListForSales lista clientes activos para la tabla del módulo de ventas.
func (r *CustomerRepo) ListForSales(ctx context.Context) ([]entity.CustomerSummary, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name,
		       COALESCE(c.email, ''), COALESCE(c.phone, '')
		FROM customer c
		WHERE c.active
		ORDER BY c.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var items []entity.CustomerSummary
	for rows.Next() {
		var it entity.CustomerSummary
		if err := rows.Scan(&it.ID, &it.FirstName, &it.LastName, &it.Email, &it.Phone); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetDetail obtiene un cliente por ID (incluye inactivos).
func (r *CustomerRepo) GetDetail(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT c.id, c.dni, c.first_name, c.last_name,
		       COALESCE(c.phone, ''), COALESCE(c.email, ''), c.active
		FROM customer c
		WHERE c.id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.DNI, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Insert crea un cliente activo. DNI duplicado -> domain.ErrDuplicate.
func (r *CustomerRepo) Insert(ctx context.Context, dni, firstName, lastName, phone, email string) (int64, error) {
	query := `
		INSERT INTO customer (dni, first_name, last_name, phone, email, active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, dni, firstName, lastName, emptyToNull(phone), emptyToNull(email)).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// Update actualiza los datos de contacto del cliente. El DNI no se edita.
func (r *CustomerRepo) Update(ctx context.Context, id int64, firstName, lastName, phone, email string) (bool, error) {
	query := `
		UPDATE customer
		SET first_name = $2, last_name = $3, phone = $4, email = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, firstName, lastName, emptyToNull(phone), emptyToNull(email))
	if err != nil {
		return false, fmt.Errorf("update customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete desactiva el cliente sin borrar la fila.
func (r *CustomerRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE customer SET active = false WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("soft delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
