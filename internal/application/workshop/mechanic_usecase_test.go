package workshop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// fakeMechanicRepo implementa repository.UserRepository con el filtro de
// concesionario que en producción vive en el self-join SQL.
type fakeMechanicRepo struct {
	bossDealership map[int64]int64 // bossID -> dealershipID
	mechanics      map[int64]*entity.User
}

func (f *fakeMechanicRepo) FindActiveByUsername(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeMechanicRepo) FindActiveMechanics(context.Context) ([]entity.IDName, error) {
	var out []entity.IDName
	for _, m := range f.mechanics {
		if m.IsActive {
			out = append(out, entity.IDName{ID: m.ID, Name: m.FullName})
		}
	}
	return out, nil
}

func (f *fakeMechanicRepo) FindMechanicsWithSkills(_ context.Context, bossID int64) ([]entity.MechanicSkill, error) {
	var out []entity.MechanicSkill
	for _, m := range f.mechanics {
		if m.DealershipID == f.bossDealership[bossID] {
			out = append(out, entity.MechanicSkill{
				ID: m.ID, FullName: m.FullName, Skills: m.Skills, Active: m.IsActive,
			})
		}
	}
	return out, nil
}

func (f *fakeMechanicRepo) FindMechanicSkills(_ context.Context, bossID, mechanicID int64) (*string, error) {
	m, ok := f.mechanics[mechanicID]
	if !ok || m.DealershipID != f.bossDealership[bossID] {
		return nil, nil
	}
	s := m.Skills
	return &s, nil
}

func (f *fakeMechanicRepo) UpdateMechanicSkills(_ context.Context, bossID, mechanicID int64, skills string) (bool, error) {
	m, ok := f.mechanics[mechanicID]
	if !ok || m.DealershipID != f.bossDealership[bossID] {
		return false, nil
	}
	m.Skills = skills
	return true, nil
}

func newMechanicRepo() *fakeMechanicRepo {
	return &fakeMechanicRepo{
		bossDealership: map[int64]int64{10: 1, 20: 2},
		mechanics: map[int64]*entity.User{
			5: {ID: 5, DealershipID: 1, FullName: "Mecánico Uno", Skills: "motor, frenos", IsActive: true},
			6: {ID: 6, DealershipID: 1, FullName: "Mecánico Dos", Skills: "", IsActive: false},
			7: {ID: 7, DealershipID: 2, FullName: "Mecánico Ajeno", Skills: "pintura", IsActive: true},
		},
	}
}

func TestListRoster_SoloDelConcesionarioDelJefe(t *testing.T) {
	uc := workshop.NewMechanicUseCase(newMechanicRepo())

	out, err := uc.ListRoster(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out, 2, "el mecánico del otro concesionario no debe aparecer")

	estados := map[int64]string{}
	for _, m := range out {
		estados[m.ID] = m.Status
	}
	assert.Equal(t, "Active", estados[5])
	assert.Equal(t, "Inactive", estados[6])
}

// Mecánico de otro concesionario: misma respuesta que si no existiera.
func TestGetSkills_OtroConcesionarioEsNotFound(t *testing.T) {
	uc := workshop.NewMechanicUseCase(newMechanicRepo())

	out, err := uc.GetSkills(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, "motor, frenos", out.Skills)

	_, err = uc.GetSkills(context.Background(), 10, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSkills_PermiteVaciarElTexto(t *testing.T) {
	repo := newMechanicRepo()
	uc := workshop.NewMechanicUseCase(repo)

	require.NoError(t, uc.UpdateSkills(context.Background(), 10, 5, dto.UpdateSkillsRequest{Skills: ""}))
	assert.Equal(t, "", repo.mechanics[5].Skills)

	err := uc.UpdateSkills(context.Background(), 10, 7, dto.UpdateSkillsRequest{Skills: "soldadura"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "pintura", repo.mechanics[7].Skills, "el mecánico ajeno no debe cambiar")
}
