package repository

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// RepairOrderRepository define el puerto de persistencia para órdenes de
// reparación (flujos del mecánico y del jefe de taller).
//
// Las transiciones de estado son UPDATE atómicos con el guard de estado en el
// WHERE; "cero filas afectadas" (false) cubre indistintamente propietario
// incorrecto y estado no editable, y el llamador no debe distinguirlos.
type RepairOrderRepository interface {
	// Create crea la orden directamente en ASSIGNED con el mecánico elegido
	// y devuelve su id. No existe flujo de creación en PENDING.
	Create(ctx context.Context, vehicleID, customerID, bossID, mechanicID int64, notes string) (int64, error)

	// FindTasksByMechanic lista las tareas asignadas a un mecánico.
	FindTasksByMechanic(ctx context.Context, mechanicID int64) ([]entity.RepairTask, error)

	// FindRepairsByBoss lista las reparaciones creadas por un jefe.
	FindRepairsByBoss(ctx context.Context, bossID int64) ([]entity.RepairTask, error)

	// FindBossEditDetails carga el detalle de edición validando propiedad
	// (created_by_boss_id = bossID); nil si no existe o sin permisos.
	FindBossEditDetails(ctx context.Context, repairID, bossID int64) (*entity.BossRepairEdit, error)

	// AssignMechanic asigna mecánico, fuerza estado ASSIGNED y actualiza
	// notas. Solo aplica si la orden es del jefe y está en PENDING/ASSIGNED.
	AssignMechanic(ctx context.Context, repairID, bossID, mechanicID int64, notes string) (bool, error)

	// UnassignMechanic limpia el mecánico, fuerza estado PENDING y actualiza
	// notas. Mismo guard de propiedad y estado que AssignMechanic.
	UnassignMechanic(ctx context.Context, repairID, bossID int64, notes string) (bool, error)

	// FindDetails carga el detalle completo (cliente y vehículo) por id, o nil.
	FindDetails(ctx context.Context, repairID int64) (*entity.RepairDetails, error)

	// Start pasa ASSIGNED -> IN_PROGRESS; start_at se fija solo si aún es NULL.
	Start(ctx context.Context, repairID int64) (bool, error)

	// Finish pasa IN_PROGRESS -> FINISHED; end_at se sobrescribe siempre.
	Finish(ctx context.Context, repairID int64) (bool, error)

	// FindHistoryByMechanic lista las reparaciones FINISHED del mecánico,
	// más recientes primero.
	FindHistoryByMechanic(ctx context.Context, mechanicID int64) ([]entity.RepairHistoryEntry, error)
}
