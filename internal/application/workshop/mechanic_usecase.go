package workshop

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// MechanicUseCase roster y habilidades de mecánicos, siempre con alcance del
// concesionario del jefe (el filtro vive en las consultas del repositorio).
type MechanicUseCase struct {
	users repository.UserRepository
}

// NewMechanicUseCase construye el caso de uso.
func NewMechanicUseCase(users repository.UserRepository) *MechanicUseCase {
	return &MechanicUseCase{users: users}
}

// ListRoster lista los mecánicos del concesionario del jefe con habilidades.
func (uc *MechanicUseCase) ListRoster(ctx context.Context, bossID int64) ([]dto.MechanicSkillResponse, error) {
	rows, err := uc.users.FindMechanicsWithSkills(ctx, bossID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MechanicSkillResponse, 0, len(rows))
	for _, m := range rows {
		status := "Inactive"
		if m.Active {
			status = "Active"
		}
		out = append(out, dto.MechanicSkillResponse{
			ID:       m.ID,
			FullName: m.FullName,
			Skills:   m.Skills,
			Status:   status,
		})
	}
	return out, nil
}

// GetSkills devuelve las habilidades de un mecánico del concesionario del
// jefe. nil del repositorio = no existe o de otro concesionario.
func (uc *MechanicUseCase) GetSkills(ctx context.Context, bossID, mechanicID int64) (*dto.SkillsResponse, error) {
	skills, err := uc.users.FindMechanicSkills(ctx, bossID, mechanicID)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SkillsResponse{MechanicID: mechanicID, Skills: *skills}, nil
}

// UpdateSkills guarda las habilidades de un mecánico del concesionario del jefe.
func (uc *MechanicUseCase) UpdateSkills(ctx context.Context, bossID, mechanicID int64, in dto.UpdateSkillsRequest) error {
	ok, err := uc.users.UpdateMechanicSkills(ctx, bossID, mechanicID, in.Skills)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
