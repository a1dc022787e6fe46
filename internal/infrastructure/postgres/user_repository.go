package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindActiveByUsername busca el usuario activo por username para el login.
func (r *UserRepo) FindActiveByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT u.id, u.dealership_id, u.username, u.password_hash,
		       u.full_name, r.name, COALESCE(u.skills, ''), u.is_active
		FROM "user" u
		JOIN role r ON r.id = u.role_id
		WHERE u.username = $1 AND u.is_active`
	var u entity.User
	err := r.q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.DealershipID, &u.Username, &u.PasswordHash,
		&u.FullName, &u.Role, &u.Skills, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// FindActiveMechanics lista mecánicos activos para el combo de asignación.
func (r *UserRepo) FindActiveMechanics(ctx context.Context) ([]entity.IDName, error) {
	query := `
		SELECT u.id, u.full_name
		FROM "user" u
		JOIN role r ON r.id = u.role_id
		WHERE UPPER(r.name) = 'MECHANIC' AND u.is_active
		ORDER BY u.full_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active mechanics: %w", err)
	}
	defer rows.Close()

	var items []entity.IDName
	for rows.Next() {
		var it entity.IDName
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan mechanic: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// FindMechanicsWithSkills lista los mecánicos del concesionario del jefe.
// El self-join con la fila del jefe hace de filtro de autorización.
func (r *UserRepo) FindMechanicsWithSkills(ctx context.Context, bossID int64) ([]entity.MechanicSkill, error) {
	query := `
		SELECT m.id, m.full_name, COALESCE(m.skills, ''), m.is_active
		FROM "user" m
		JOIN role r ON r.id = m.role_id
		JOIN "user" b ON b.id = $1
		WHERE r.name = 'MECHANIC' AND m.dealership_id = b.dealership_id
		ORDER BY m.full_name`
	rows, err := r.q.Query(ctx, query, bossID)
	if err != nil {
		return nil, fmt.Errorf("list mechanics with skills: %w", err)
	}
	defer rows.Close()

	var items []entity.MechanicSkill
	for rows.Next() {
		var it entity.MechanicSkill
		if err := rows.Scan(&it.ID, &it.FullName, &it.Skills, &it.Active); err != nil {
			return nil, fmt.Errorf("scan mechanic skills: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// FindMechanicSkills carga las habilidades de un mecánico del concesionario
// del jefe. nil cubre a la vez "no existe" y "de otro concesionario".
func (r *UserRepo) FindMechanicSkills(ctx context.Context, bossID, mechanicID int64) (*string, error) {
	query := `
		SELECT COALESCE(m.skills, '')
		FROM "user" m
		JOIN role r ON r.id = m.role_id
		JOIN "user" b ON b.id = $1
		WHERE m.id = $2 AND r.name = 'MECHANIC'
		  AND m.dealership_id = b.dealership_id`
	var skills string
	err := r.q.QueryRow(ctx, query, bossID, mechanicID).Scan(&skills)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mechanic skills: %w", err)
	}
	return &skills, nil
}

// UpdateMechanicSkills actualiza las habilidades con el mismo filtro de
// concesionario incorporado en el UPDATE.
func (r *UserRepo) UpdateMechanicSkills(ctx context.Context, bossID, mechanicID int64, skills string) (bool, error) {
	query := `
		UPDATE "user" m
		SET skills = $2
		FROM "user" b, role r
		WHERE b.id = $1
		  AND r.id = m.role_id
		  AND m.id = $3
		  AND r.name = 'MECHANIC'
		  AND m.dealership_id = b.dealership_id`
	tag, err := r.q.Exec(ctx, query, bossID, skills, mechanicID)
	if err != nil {
		return false, fmt.Errorf("update mechanic skills: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
