package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// fakeCustomerRepo repositorio en memoria con borrado lógico y DNI único.
type fakeCustomerRepo struct {
	nextID    int64
	customers map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1, customers: map[int64]*entity.Customer{}}
}

func (f *fakeCustomerRepo) add(dni, first, last, email string) int64 {
	id := f.nextID
	f.nextID++
	f.customers[id] = &entity.Customer{
		ID: id, DNI: dni, FirstName: first, LastName: last, Email: email, Active: true,
	}
	return id
}

func (f *fakeCustomerRepo) ListForCombo(context.Context) ([]entity.IDName, error) { return nil, nil }

func (f *fakeCustomerRepo) ListForSales(context.Context) ([]entity.CustomerSummary, error) {
	var out []entity.CustomerSummary
	for _, c := range f.customers {
		if !c.Active {
			continue
		}
		out = append(out, entity.CustomerSummary{
			ID: c.ID, FirstName: c.FirstName, LastName: c.LastName,
			Email: c.Email, Phone: c.Phone,
		})
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetDetail(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCustomerRepo) Insert(_ context.Context, dni, firstName, lastName, phone, email string) (int64, error) {
	for _, c := range f.customers {
		if c.DNI == dni {
			return 0, domain.ErrDuplicate
		}
	}
	id := f.nextID
	f.nextID++
	f.customers[id] = &entity.Customer{
		ID: id, DNI: dni, FirstName: firstName, LastName: lastName,
		Phone: phone, Email: email, Active: true,
	}
	return id, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, id int64, firstName, lastName, phone, email string) (bool, error) {
	c, ok := f.customers[id]
	if !ok {
		return false, nil
	}
	c.FirstName, c.LastName, c.Phone, c.Email = firstName, lastName, phone, email
	return true, nil
}

func (f *fakeCustomerRepo) SoftDelete(_ context.Context, id int64) (bool, error) {
	c, ok := f.customers[id]
	if !ok {
		return false, nil
	}
	c.Active = false
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El filtro ?q= ignora mayúsculas y tildes: "garcia" encuentra "García".
func TestCustomerList_BusquedaSinTildes(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.add("111", "Ana", "García", "ana@mail.com")
	repo.add("222", "José", "Pérez", "jose@mail.com")
	repo.add("333", "Luis", "Martínez", "luis@mail.com")
	uc := sales.NewCustomerUseCase(repo)

	out, err := uc.List(context.Background(), "garcia")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "García", out[0].LastName)

	// También al revés: la aguja con tilde encuentra datos sin tilde.
	repo.add("444", "Maria", "Perez", "maria@mail.com")
	out, err = uc.List(context.Background(), "pérez")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestCustomerList_SinFiltroDevuelveTodos(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.add("111", "Ana", "García", "ana@mail.com")
	repo.add("222", "José", "Pérez", "jose@mail.com")
	uc := sales.NewCustomerUseCase(repo)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestCustomerList_BuscaPorEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.add("111", "Ana", "García", "ana@mail.com")
	repo.add("222", "José", "Pérez", "jose@mail.com")
	uc := sales.NewCustomerUseCase(repo)

	out, err := uc.List(context.Background(), "jose@")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "José", out[0].FirstName)
}

func TestCustomerCreate_DNIDuplicado(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.add("111", "Ana", "García", "ana@mail.com")
	uc := sales.NewCustomerUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		DNI: "111", FirstName: "Otra", LastName: "Persona",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerDelete_EsBorradoLogico(t *testing.T) {
	repo := newFakeCustomerRepo()
	id := repo.add("111", "Ana", "García", "ana@mail.com")
	uc := sales.NewCustomerUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), id))

	// La fila sigue existiendo, inactiva: el detalle aún responde.
	det, err := uc.GetDetail(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, det.Active)

	// Pero ya no sale en el listado.
	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCustomerUpdate_NoExiste(t *testing.T) {
	uc := sales.NewCustomerUseCase(newFakeCustomerRepo())
	err := uc.Update(context.Background(), 404, dto.UpdateCustomerRequest{
		FirstName: "Ana", LastName: "García",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
