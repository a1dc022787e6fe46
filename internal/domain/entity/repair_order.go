package entity

import (
	"strings"
	"time"
)

// Estados del ciclo de vida de una reparación.
//
//	PENDING --(jefe asigna mecánico)--> ASSIGNED
//	ASSIGNED --(jefe desasigna)--> PENDING
//	ASSIGNED --(mecánico inicia)--> IN_PROGRESS
//	IN_PROGRESS --(mecánico termina)--> FINISHED  (terminal)
const (
	RepairStatusPending    = "PENDING"
	RepairStatusAssigned   = "ASSIGNED"
	RepairStatusInProgress = "IN_PROGRESS"
	RepairStatusFinished   = "FINISHED"
)

// NormalizeStatus normaliza un estado tal como lo hacen los guards SQL:
// UPPER(TRIM(status)). Aplica a estados de reparación y de propuesta.
func NormalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsRepairEditable indica si el jefe puede editar la reparación
// (asignar/desasignar mecánico, notas). Solo en PENDING o ASSIGNED.
func IsRepairEditable(status string) bool {
	switch NormalizeStatus(status) {
	case RepairStatusPending, RepairStatusAssigned:
		return true
	}
	return false
}

// CanStartRepair indica si la reparación puede pasar a IN_PROGRESS.
func CanStartRepair(status string) bool {
	return NormalizeStatus(status) == RepairStatusAssigned
}

// CanFinishRepair indica si la reparación puede pasar a FINISHED.
func CanFinishRepair(status string) bool {
	return NormalizeStatus(status) == RepairStatusInProgress
}

// RepairOrder representa una orden de reparación.
// AssignedMechanicID es nil cuando el estado es PENDING.
type RepairOrder struct {
	ID                 int64
	VehicleID          int64
	CustomerID         int64
	CreatedByBossID    int64
	AssignedMechanicID *int64
	Status             string
	Notes              string
	StartAt            *time.Time // se fija una sola vez al entrar a IN_PROGRESS
	EndAt              *time.Time // se sobrescribe al entrar a FINISHED
}

// RepairTask fila de la lista de tareas del mecánico y de la lista de
// reparaciones del jefe (vehículo como texto "marca modelo").
type RepairTask struct {
	ID          int64
	VehicleText string
	Status      string
}

// RepairDetails detalle de una reparación con los datos del cliente y el
// vehículo (pantallas de detalle del mecánico).
type RepairDetails struct {
	ID            int64
	Status        string
	Notes         string
	CustomerID    int64
	CustomerName  string
	CustomerDNI   string
	CustomerPhone string
	CustomerEmail string
	VehicleText   string
}

// BossRepairEdit detalle de una reparación para la pantalla de edición del
// jefe. La consulta que lo carga valida además la propiedad
// (created_by_boss_id), así que también actúa como chequeo de permisos.
type BossRepairEdit struct {
	ID           int64
	VehicleText  string
	Status       string
	Notes        string
	MechanicID   *int64
	MechanicName string
}

// RepairHistoryEntry fila del historial de reparaciones terminadas del mecánico.
type RepairHistoryEntry struct {
	ID          int64
	VehicleText string
	Status      string
	EndDate     string // dd/mm/yyyy, "-" si no hay fecha
}
