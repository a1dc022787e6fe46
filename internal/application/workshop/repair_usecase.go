package workshop

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// RepairUseCase flujos de órdenes de reparación: creación y edición por el
// jefe de taller, ejecución (start/finish) e historial por el mecánico.
type RepairUseCase struct {
	repairs repository.RepairOrderRepository
}

// NewRepairUseCase construye el caso de uso.
func NewRepairUseCase(repairs repository.RepairOrderRepository) *RepairUseCase {
	return &RepairUseCase{repairs: repairs}
}

// CreateRepair crea una orden para el jefe. Nace directamente en ASSIGNED:
// la pantalla de registro obliga a elegir mecánico al crear.
func (uc *RepairUseCase) CreateRepair(ctx context.Context, bossID int64, in dto.CreateRepairRequest) (*dto.CreateRepairResponse, error) {
	id, err := uc.repairs.Create(ctx, in.VehicleID, in.CustomerID, bossID, in.MechanicID, in.Notes)
	if err != nil {
		return nil, err
	}
	return &dto.CreateRepairResponse{ID: id, Status: entity.RepairStatusAssigned}, nil
}

// ListBossRepairs lista las reparaciones creadas por el jefe.
func (uc *RepairUseCase) ListBossRepairs(ctx context.Context, bossID int64) ([]dto.RepairTaskResponse, error) {
	rows, err := uc.repairs.FindRepairsByBoss(ctx, bossID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(rows), nil
}

// GetBossEditDetails carga el detalle de edición de una reparación del jefe.
// Un resultado nil del repositorio significa "no existe o no es suya": ambos
// casos responden lo mismo.
func (uc *RepairUseCase) GetBossEditDetails(ctx context.Context, repairID, bossID int64) (*dto.BossRepairEditResponse, error) {
	det, err := uc.repairs.FindBossEditDetails(ctx, repairID, bossID)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BossRepairEditResponse{
		ID:           det.ID,
		Vehicle:      det.VehicleText,
		Status:       det.Status,
		Notes:        det.Notes,
		Editable:     entity.IsRepairEditable(det.Status),
		MechanicID:   det.MechanicID,
		MechanicName: det.MechanicName,
	}, nil
}

// AssignMechanic asigna mecánico y actualiza notas (fuerza ASSIGNED).
// "Cero filas afectadas" cubre propietario incorrecto y estado no editable;
// se responde con el mismo error genérico en ambos casos.
func (uc *RepairUseCase) AssignMechanic(ctx context.Context, repairID, bossID int64, in dto.AssignMechanicRequest) error {
	ok, err := uc.repairs.AssignMechanic(ctx, repairID, bossID, in.MechanicID, in.Notes)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// UnassignMechanic desasigna el mecánico y actualiza notas (fuerza PENDING).
func (uc *RepairUseCase) UnassignMechanic(ctx context.Context, repairID, bossID int64, in dto.UnassignMechanicRequest) error {
	ok, err := uc.repairs.UnassignMechanic(ctx, repairID, bossID, in.Notes)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListTasks lista las tareas asignadas al mecánico autenticado.
func (uc *RepairUseCase) ListTasks(ctx context.Context, mechanicID int64) ([]dto.RepairTaskResponse, error) {
	rows, err := uc.repairs.FindTasksByMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(rows), nil
}

// GetDetails carga el detalle completo de una reparación (cliente y vehículo).
func (uc *RepairUseCase) GetDetails(ctx context.Context, repairID int64) (*dto.RepairDetailsResponse, error) {
	det, err := uc.repairs.FindDetails(ctx, repairID)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.RepairDetailsResponse{
		ID:            det.ID,
		Status:        det.Status,
		Notes:         det.Notes,
		CustomerID:    det.CustomerID,
		CustomerName:  det.CustomerName,
		CustomerDNI:   det.CustomerDNI,
		CustomerPhone: det.CustomerPhone,
		CustomerEmail: det.CustomerEmail,
		Vehicle:       det.VehicleText,
	}, nil
}

// StartRepair pasa la reparación de ASSIGNED a IN_PROGRESS. El guard de
// estado vive en el UPDATE: una segunda llamada no afecta filas y responde
// el mismo error genérico.
func (uc *RepairUseCase) StartRepair(ctx context.Context, repairID int64) error {
	ok, err := uc.repairs.Start(ctx, repairID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// FinishRepair pasa la reparación de IN_PROGRESS a FINISHED.
func (uc *RepairUseCase) FinishRepair(ctx context.Context, repairID int64) error {
	ok, err := uc.repairs.Finish(ctx, repairID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// History lista las reparaciones terminadas del mecánico.
func (uc *RepairUseCase) History(ctx context.Context, mechanicID int64) ([]dto.RepairHistoryResponse, error) {
	rows, err := uc.repairs.FindHistoryByMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RepairHistoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RepairHistoryResponse{
			ID:      r.ID,
			Vehicle: dto.SafeText(r.VehicleText),
			Status:  "Completed",
			EndDate: dto.SafeText(r.EndDate),
		})
	}
	return out, nil
}

func toTaskResponses(rows []entity.RepairTask) []dto.RepairTaskResponse {
	out := make([]dto.RepairTaskResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RepairTaskResponse{
			ID:      r.ID,
			Code:    dto.DisplayCode(r.ID),
			Vehicle: dto.SafeText(r.VehicleText),
			Status:  dto.SafeText(r.Status),
		})
	}
	return out
}
