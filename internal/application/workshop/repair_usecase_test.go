package workshop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// fakeRepairRepo repositorio en memoria que reproduce los guards SQL:
// las transiciones solo afectan filas en el estado de origen correcto y,
// para las operaciones del jefe, con el propietario correcto.
type fakeRepairRepo struct {
	nextID  int64
	repairs map[int64]*entity.RepairOrder
}

func newFakeRepairRepo() *fakeRepairRepo {
	return &fakeRepairRepo{nextID: 1, repairs: map[int64]*entity.RepairOrder{}}
}

func (f *fakeRepairRepo) add(bossID, mechanicID int64, status string) int64 {
	id := f.nextID
	f.nextID++
	var mech *int64
	if mechanicID > 0 {
		m := mechanicID
		mech = &m
	}
	f.repairs[id] = &entity.RepairOrder{
		ID: id, VehicleID: 1, CustomerID: 1,
		CreatedByBossID: bossID, AssignedMechanicID: mech, Status: status,
	}
	return id
}

func (f *fakeRepairRepo) Create(_ context.Context, vehicleID, customerID, bossID, mechanicID int64, notes string) (int64, error) {
	id := f.nextID
	f.nextID++
	m := mechanicID
	f.repairs[id] = &entity.RepairOrder{
		ID: id, VehicleID: vehicleID, CustomerID: customerID,
		CreatedByBossID: bossID, AssignedMechanicID: &m,
		Status: entity.RepairStatusAssigned, Notes: notes,
	}
	return id, nil
}

func (f *fakeRepairRepo) FindTasksByMechanic(_ context.Context, mechanicID int64) ([]entity.RepairTask, error) {
	var out []entity.RepairTask
	for _, r := range f.repairs {
		if r.AssignedMechanicID != nil && *r.AssignedMechanicID == mechanicID {
			out = append(out, entity.RepairTask{ID: r.ID, VehicleText: "Toyota Corolla", Status: r.Status})
		}
	}
	return out, nil
}

func (f *fakeRepairRepo) FindRepairsByBoss(_ context.Context, bossID int64) ([]entity.RepairTask, error) {
	var out []entity.RepairTask
	for _, r := range f.repairs {
		if r.CreatedByBossID == bossID {
			out = append(out, entity.RepairTask{ID: r.ID, VehicleText: "Toyota Corolla", Status: r.Status})
		}
	}
	return out, nil
}

func (f *fakeRepairRepo) FindBossEditDetails(_ context.Context, repairID, bossID int64) (*entity.BossRepairEdit, error) {
	r, ok := f.repairs[repairID]
	if !ok || r.CreatedByBossID != bossID {
		return nil, nil
	}
	return &entity.BossRepairEdit{
		ID: r.ID, VehicleText: "Toyota Corolla",
		Status: r.Status, Notes: r.Notes, MechanicID: r.AssignedMechanicID,
	}, nil
}

func (f *fakeRepairRepo) AssignMechanic(_ context.Context, repairID, bossID, mechanicID int64, notes string) (bool, error) {
	r, ok := f.repairs[repairID]
	if !ok || r.CreatedByBossID != bossID || !entity.IsRepairEditable(r.Status) {
		return false, nil
	}
	m := mechanicID
	r.AssignedMechanicID = &m
	r.Status = entity.RepairStatusAssigned
	r.Notes = notes
	return true, nil
}

func (f *fakeRepairRepo) UnassignMechanic(_ context.Context, repairID, bossID int64, notes string) (bool, error) {
	r, ok := f.repairs[repairID]
	if !ok || r.CreatedByBossID != bossID || !entity.IsRepairEditable(r.Status) {
		return false, nil
	}
	r.AssignedMechanicID = nil
	r.Status = entity.RepairStatusPending
	r.Notes = notes
	return true, nil
}

func (f *fakeRepairRepo) FindDetails(_ context.Context, repairID int64) (*entity.RepairDetails, error) {
	r, ok := f.repairs[repairID]
	if !ok {
		return nil, nil
	}
	return &entity.RepairDetails{
		ID: r.ID, Status: r.Status, Notes: r.Notes,
		CustomerID: r.CustomerID, CustomerName: "Ana García", CustomerDNI: "12345678",
		VehicleText: "Toyota Corolla",
	}, nil
}

func (f *fakeRepairRepo) Start(_ context.Context, repairID int64) (bool, error) {
	r, ok := f.repairs[repairID]
	if !ok || !entity.CanStartRepair(r.Status) {
		return false, nil
	}
	r.Status = entity.RepairStatusInProgress
	// COALESCE(start_at, NOW()): un arranque previo no se pisa
	if r.StartAt == nil {
		now := time.Now()
		r.StartAt = &now
	}
	return true, nil
}

func (f *fakeRepairRepo) Finish(_ context.Context, repairID int64) (bool, error) {
	r, ok := f.repairs[repairID]
	if !ok || !entity.CanFinishRepair(r.Status) {
		return false, nil
	}
	r.Status = entity.RepairStatusFinished
	now := time.Now()
	r.EndAt = &now
	return true, nil
}

func (f *fakeRepairRepo) FindHistoryByMechanic(_ context.Context, mechanicID int64) ([]entity.RepairHistoryEntry, error) {
	var out []entity.RepairHistoryEntry
	for _, r := range f.repairs {
		if r.AssignedMechanicID != nil && *r.AssignedMechanicID == mechanicID &&
			entity.NormalizeStatus(r.Status) == entity.RepairStatusFinished {
			out = append(out, entity.RepairHistoryEntry{
				ID: r.ID, VehicleText: "Toyota Corolla", Status: r.Status, EndDate: "15/03/2026",
			})
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRepair_NaceEnAssigned(t *testing.T) {
	repo := newFakeRepairRepo()
	uc := workshop.NewRepairUseCase(repo)

	out, err := uc.CreateRepair(context.Background(), 10, dto.CreateRepairRequest{
		VehicleID: 1, CustomerID: 2, MechanicID: 5, Notes: "cambio de aceite",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RepairStatusAssigned, out.Status)

	r := repo.repairs[out.ID]
	require.NotNil(t, r.AssignedMechanicID)
	assert.Equal(t, int64(5), *r.AssignedMechanicID)
}

func TestStartRepair_DesdeAssigned(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 5, entity.RepairStatusAssigned)
	uc := workshop.NewRepairUseCase(repo)

	require.NoError(t, uc.StartRepair(context.Background(), id))
	assert.Equal(t, entity.RepairStatusInProgress, repo.repairs[id].Status)
}

// Un segundo start no encuentra filas en ASSIGNED y responde el mismo error
// genérico que una reparación inexistente.
func TestStartRepair_DobleStartFalla(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 5, entity.RepairStatusAssigned)
	uc := workshop.NewRepairUseCase(repo)

	require.NoError(t, uc.StartRepair(context.Background(), id))
	r := repo.repairs[id]
	require.NotNil(t, r.StartAt)
	primerArranque := *r.StartAt

	err := uc.StartRepair(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.RepairStatusInProgress, r.Status, "el estado no debe retroceder")
	assert.Equal(t, primerArranque, *r.StartAt, "start_at se fija una sola vez")
}

func TestStartRepair_DesdePendingFalla(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 0, entity.RepairStatusPending)
	uc := workshop.NewRepairUseCase(repo)

	err := uc.StartRepair(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinishRepair_SoloDesdeInProgress(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 5, entity.RepairStatusAssigned)
	uc := workshop.NewRepairUseCase(repo)

	require.NoError(t, uc.StartRepair(context.Background(), id))
	require.NoError(t, uc.FinishRepair(context.Background(), id))

	r := repo.repairs[id]
	assert.Equal(t, entity.RepairStatusFinished, r.Status)
	require.NotNil(t, r.StartAt)
	require.NotNil(t, r.EndAt)
	assert.False(t, r.EndAt.Before(*r.StartAt), "end_at debe ser >= start_at")

	// FINISHED es terminal
	err := uc.FinishRepair(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinishRepair_DesdeAssignedFalla(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 5, entity.RepairStatusAssigned)
	uc := workshop.NewRepairUseCase(repo)

	err := uc.FinishRepair(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.RepairStatusAssigned, repo.repairs[id].Status)
}

func TestAssignMechanic_OtroJefeRecibeNotFound(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 0, entity.RepairStatusPending)
	uc := workshop.NewRepairUseCase(repo)

	// El jefe 99 no creó la reparación: misma respuesta que si no existiera.
	err := uc.AssignMechanic(context.Background(), id, 99, dto.AssignMechanicRequest{MechanicID: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El dueño sí puede.
	require.NoError(t, uc.AssignMechanic(context.Background(), id, 10, dto.AssignMechanicRequest{MechanicID: 5}))
	assert.Equal(t, entity.RepairStatusAssigned, repo.repairs[id].Status)
}

func TestAssignMechanic_NoEditableEnProgreso(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 5, entity.RepairStatusInProgress)
	uc := workshop.NewRepairUseCase(repo)

	err := uc.AssignMechanic(context.Background(), id, 10, dto.AssignMechanicRequest{MechanicID: 7})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnassignMechanic_VuelveAPending(t *testing.T) {
	repo := newFakeRepairRepo()
	id := repo.add(10, 5, entity.RepairStatusAssigned)
	uc := workshop.NewRepairUseCase(repo)

	require.NoError(t, uc.UnassignMechanic(context.Background(), id, 10, dto.UnassignMechanicRequest{Notes: "mecánico de baja"}))
	r := repo.repairs[id]
	assert.Equal(t, entity.RepairStatusPending, r.Status)
	assert.Nil(t, r.AssignedMechanicID)
}

func TestGetBossEditDetails_EditableSegunEstado(t *testing.T) {
	repo := newFakeRepairRepo()
	editable := repo.add(10, 5, entity.RepairStatusAssigned)
	bloqueada := repo.add(10, 5, entity.RepairStatusFinished)
	uc := workshop.NewRepairUseCase(repo)

	out, err := uc.GetBossEditDetails(context.Background(), editable, 10)
	require.NoError(t, err)
	assert.True(t, out.Editable)

	out, err = uc.GetBossEditDetails(context.Background(), bloqueada, 10)
	require.NoError(t, err)
	assert.False(t, out.Editable)

	// Reparación de otro jefe: 404 indistinguible de inexistente.
	_, err = uc.GetBossEditDetails(context.Background(), editable, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_SoloTerminadasConTextoCompleted(t *testing.T) {
	repo := newFakeRepairRepo()
	repo.add(10, 5, entity.RepairStatusFinished)
	repo.add(10, 5, entity.RepairStatusInProgress)
	repo.add(10, 7, entity.RepairStatusFinished) // de otro mecánico
	uc := workshop.NewRepairUseCase(repo)

	out, err := uc.History(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Completed", out[0].Status)
	assert.Equal(t, "15/03/2026", out[0].EndDate)
}

func TestListTasks_GeneraCodigoVisible(t *testing.T) {
	repo := newFakeRepairRepo()
	repo.add(10, 5, entity.RepairStatusAssigned)
	uc := workshop.NewRepairUseCase(repo)

	out, err := uc.ListTasks(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "00001", out[0].Code)
}
