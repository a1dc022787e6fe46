package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

var _ repository.RepairOrderRepository = (*RepairOrderRepo)(nil)

// RepairOrderRepo implementación de RepairOrderRepository.
//
// Todas las transiciones de estado van en un único UPDATE con el guard
// UPPER(TRIM(status)) en el WHERE; el estado viejo nunca se lee primero.
type RepairOrderRepo struct {
	q Querier
}

// NewRepairOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRepairOrderRepository(q Querier) *RepairOrderRepo {
	return &RepairOrderRepo{q: q}
}

// Create inserta la orden directamente en ASSIGNED con mecánico.
func (r *RepairOrderRepo) Create(ctx context.Context, vehicleID, customerID, bossID, mechanicID int64, notes string) (int64, error) {
	query := `
		INSERT INTO repair_order
			(vehicle_id, customer_id, created_by_boss_id, assigned_mechanic_id, status, notes)
		VALUES ($1, $2, $3, $4, 'ASSIGNED', $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, vehicleID, customerID, bossID, mechanicID, emptyToNull(notes)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert repair order: %w", err)
	}
	return id, nil
}

// FindTasksByMechanic lista las tareas asignadas a un mecánico.
func (r *RepairOrderRepo) FindTasksByMechanic(ctx context.Context, mechanicID int64) ([]entity.RepairTask, error) {
	query := `
		SELECT ro.id, concat_ws(' ', v.brand, v.model), ro.status
		FROM repair_order ro
		JOIN vehicle v ON v.id = ro.vehicle_id
		WHERE ro.assigned_mechanic_id = $1
		ORDER BY ro.id ASC`
	return r.queryTasks(ctx, query, mechanicID)
}

// FindRepairsByBoss lista las reparaciones creadas por un jefe.
func (r *RepairOrderRepo) FindRepairsByBoss(ctx context.Context, bossID int64) ([]entity.RepairTask, error) {
	query := `
		SELECT ro.id, concat_ws(' ', v.brand, v.model), ro.status
		FROM repair_order ro
		JOIN vehicle v ON v.id = ro.vehicle_id
		WHERE ro.created_by_boss_id = $1
		ORDER BY ro.id ASC`
	return r.queryTasks(ctx, query, bossID)
}

func (r *RepairOrderRepo) queryTasks(ctx context.Context, query string, userID int64) ([]entity.RepairTask, error) {
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list repair tasks: %w", err)
	}
	defer rows.Close()

	var items []entity.RepairTask
	for rows.Next() {
		var it entity.RepairTask
		if err := rows.Scan(&it.ID, &it.VehicleText, &it.Status); err != nil {
			return nil, fmt.Errorf("scan repair task: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// FindBossEditDetails carga el detalle de edición; el filtro por
// created_by_boss_id hace también de chequeo de permisos.
func (r *RepairOrderRepo) FindBossEditDetails(ctx context.Context, repairID, bossID int64) (*entity.BossRepairEdit, error) {
	query := `
		SELECT ro.id, concat_ws(' ', v.brand, v.model), ro.status,
		       COALESCE(ro.notes, ''), ro.assigned_mechanic_id,
		       COALESCE(m.full_name, '')
		FROM repair_order ro
		JOIN vehicle v ON v.id = ro.vehicle_id
		LEFT JOIN "user" m ON m.id = ro.assigned_mechanic_id
		WHERE ro.id = $1 AND ro.created_by_boss_id = $2`
	var e entity.BossRepairEdit
	err := r.q.QueryRow(ctx, query, repairID, bossID).Scan(
		&e.ID, &e.VehicleText, &e.Status, &e.Notes, &e.MechanicID, &e.MechanicName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair edit details: %w", err)
	}
	return &e, nil
}

// AssignMechanic asigna mecánico y fuerza ASSIGNED. Guard de propiedad y
// estado en el WHERE; false si no se tocó ninguna fila.
func (r *RepairOrderRepo) AssignMechanic(ctx context.Context, repairID, bossID, mechanicID int64, notes string) (bool, error) {
	query := `
		UPDATE repair_order
		SET assigned_mechanic_id = $1, status = 'ASSIGNED', notes = $2
		WHERE id = $3
		  AND created_by_boss_id = $4
		  AND UPPER(TRIM(status)) IN ('PENDING', 'ASSIGNED')`
	tag, err := r.q.Exec(ctx, query, mechanicID, emptyToNull(notes), repairID, bossID)
	if err != nil {
		return false, fmt.Errorf("assign mechanic: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UnassignMechanic quita el mecánico y vuelve a PENDING. Mismo guard.
func (r *RepairOrderRepo) UnassignMechanic(ctx context.Context, repairID, bossID int64, notes string) (bool, error) {
	query := `
		UPDATE repair_order
		SET assigned_mechanic_id = NULL, status = 'PENDING', notes = $1
		WHERE id = $2
		  AND created_by_boss_id = $3
		  AND UPPER(TRIM(status)) IN ('PENDING', 'ASSIGNED')`
	tag, err := r.q.Exec(ctx, query, emptyToNull(notes), repairID, bossID)
	if err != nil {
		return false, fmt.Errorf("unassign mechanic: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindDetails carga el detalle completo de la reparación con cliente y
// vehículo (pantalla de detalle del mecánico).
func (r *RepairOrderRepo) FindDetails(ctx context.Context, repairID int64) (*entity.RepairDetails, error) {
	query := `
		SELECT ro.id, ro.status, COALESCE(ro.notes, ''),
		       c.id, concat(c.first_name, ' ', c.last_name),
		       c.dni, COALESCE(c.phone, ''), COALESCE(c.email, ''),
		       concat_ws(' ', v.brand, v.model)
		FROM repair_order ro
		JOIN customer c ON c.id = ro.customer_id
		JOIN vehicle v ON v.id = ro.vehicle_id
		WHERE ro.id = $1`
	var d entity.RepairDetails
	err := r.q.QueryRow(ctx, query, repairID).Scan(
		&d.ID, &d.Status, &d.Notes,
		&d.CustomerID, &d.CustomerName, &d.CustomerDNI, &d.CustomerPhone, &d.CustomerEmail,
		&d.VehicleText,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair details: %w", err)
	}
	return &d, nil
}

// Start pasa ASSIGNED -> IN_PROGRESS. start_at se fija solo la primera vez
// (COALESCE), así reiniciar tras un desvío no pisa la fecha original.
func (r *RepairOrderRepo) Start(ctx context.Context, repairID int64) (bool, error) {
	query := `
		UPDATE repair_order
		SET status = 'IN_PROGRESS', start_at = COALESCE(start_at, NOW())
		WHERE id = $1 AND UPPER(TRIM(status)) = 'ASSIGNED'`
	tag, err := r.q.Exec(ctx, query, repairID)
	if err != nil {
		return false, fmt.Errorf("start repair: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Finish pasa IN_PROGRESS -> FINISHED y sobrescribe end_at.
func (r *RepairOrderRepo) Finish(ctx context.Context, repairID int64) (bool, error) {
	query := `
		UPDATE repair_order
		SET status = 'FINISHED', end_at = NOW()
		WHERE id = $1 AND UPPER(TRIM(status)) = 'IN_PROGRESS'`
	tag, err := r.q.Exec(ctx, query, repairID)
	if err != nil {
		return false, fmt.Errorf("finish repair: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindHistoryByMechanic lista reparaciones FINISHED del mecánico, fecha
// formateada en SQL como en el resto de listados.
func (r *RepairOrderRepo) FindHistoryByMechanic(ctx context.Context, mechanicID int64) ([]entity.RepairHistoryEntry, error) {
	query := `
		SELECT ro.id, concat_ws(' ', v.brand, v.model), ro.status,
		       COALESCE(to_char(ro.end_at, 'DD/MM/YYYY'), '-')
		FROM repair_order ro
		JOIN vehicle v ON v.id = ro.vehicle_id
		WHERE ro.assigned_mechanic_id = $1
		  AND UPPER(TRIM(ro.status)) = 'FINISHED'
		ORDER BY ro.end_at DESC, ro.id DESC`
	rows, err := r.q.Query(ctx, query, mechanicID)
	if err != nil {
		return nil, fmt.Errorf("list repair history: %w", err)
	}
	defer rows.Close()

	var items []entity.RepairHistoryEntry
	for rows.Next() {
		var it entity.RepairHistoryEntry
		if err := rows.Scan(&it.ID, &it.VehicleText, &it.Status, &it.EndDate); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
