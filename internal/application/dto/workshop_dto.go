package dto

// RepairTaskResponse fila de la lista de tareas del mecánico y de la lista
// de reparaciones del jefe.
type RepairTaskResponse struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Vehicle string `json:"vehicle"`
	Status  string `json:"status"`
}

// RepairDetailsResponse detalle de una reparación con cliente y vehículo.
type RepairDetailsResponse struct {
	ID            int64  `json:"id"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	CustomerID    int64  `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerDNI   string `json:"customer_dni"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Vehicle       string `json:"vehicle"`
}

// BossRepairEditResponse detalle de edición para el jefe. Editable refleja el
// predicado de edición (estado PENDING o ASSIGNED).
type BossRepairEditResponse struct {
	ID           int64  `json:"id"`
	Vehicle      string `json:"vehicle"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	Editable     bool   `json:"editable"`
	MechanicID   *int64 `json:"mechanic_id,omitempty"`
	MechanicName string `json:"mechanic_name,omitempty"`
}

// CreateRepairRequest body para POST /api/boss/repairs.
// Las notas son obligatorias, igual que en la pantalla de registro original.
type CreateRepairRequest struct {
	VehicleID  int64  `json:"vehicle_id" validate:"required,gt=0"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	MechanicID int64  `json:"mechanic_id" validate:"required,gt=0"`
	Notes      string `json:"notes" validate:"required"`
}

// CreateRepairResponse id de la reparación creada (siempre nace en ASSIGNED).
type CreateRepairResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// AssignMechanicRequest body para PUT /api/boss/repairs/:id/assign.
type AssignMechanicRequest struct {
	MechanicID int64  `json:"mechanic_id" validate:"required,gt=0"`
	Notes      string `json:"notes"`
}

// UnassignMechanicRequest body para PUT /api/boss/repairs/:id/unassign.
type UnassignMechanicRequest struct {
	Notes string `json:"notes"`
}

// MechanicSkillResponse fila del roster de mecánicos del jefe.
type MechanicSkillResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Skills   string `json:"skills"`
	Status   string `json:"status"` // "Active" | "Inactive"
}

// SkillsResponse habilidades de un mecánico concreto.
type SkillsResponse struct {
	MechanicID int64  `json:"mechanic_id"`
	Skills     string `json:"skills"`
}

// UpdateSkillsRequest body para PUT /api/boss/mechanics/:id/skills.
// El texto puede quedar vacío (borrar habilidades).
type UpdateSkillsRequest struct {
	Skills string `json:"skills"`
}

// RepairHistoryResponse fila del historial de reparaciones terminadas.
type RepairHistoryResponse struct {
	ID      int64  `json:"id"`
	Vehicle string `json:"vehicle"`
	Status  string `json:"status"` // texto "Completed" para la tabla
	EndDate string `json:"end_date"`
}
