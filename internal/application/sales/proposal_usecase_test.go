package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// fakeStore estado compartido en memoria de propuestas y ventas. Reproduce
// la unicidad de sale.proposal_id: una propuesta produce a lo sumo una venta.
type fakeStore struct {
	nextProposalID int64
	nextSaleID     int64
	proposals      map[int64]*entity.SaleProposal
	saleByProposal map[int64]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextProposalID: 1,
		nextSaleID:     1,
		proposals:      map[int64]*entity.SaleProposal{},
		saleByProposal: map[int64]int64{},
	}
}

func (s *fakeStore) addProposal(status string, price string) int64 {
	id := s.nextProposalID
	s.nextProposalID++
	p, _ := decimal.NewFromString(price)
	s.proposals[id] = &entity.SaleProposal{
		ID: id, CustomerID: 1, VehicleID: 1, SellerUserID: 1, DealershipID: 1,
		Price: p, Status: status,
	}
	return id
}

// fakeProposalRepo implementa repository.ProposalRepository sobre fakeStore.
type fakeProposalRepo struct{ s *fakeStore }

func (r *fakeProposalRepo) ListForSales(context.Context) ([]entity.ProposalSummary, error) {
	var out []entity.ProposalSummary
	for _, p := range r.s.proposals {
		out = append(out, entity.ProposalSummary{
			ID: p.ID, VehicleText: "Mazda 3 Rojo 2022", CustomerName: "Ana García",
			Price: p.Price, Status: p.Status,
		})
	}
	return out, nil
}

func (r *fakeProposalRepo) GetDetail(_ context.Context, id int64) (*entity.ProposalDetail, error) {
	p, ok := r.s.proposals[id]
	if !ok {
		return nil, nil
	}
	return &entity.ProposalDetail{
		ID: p.ID, CustomerID: p.CustomerID, VehicleID: p.VehicleID,
		CustomerName: "Ana García", VehicleText: "Mazda 3 Rojo 2022",
		Price: p.Price, Notes: p.Notes, Status: p.Status,
	}, nil
}

func (r *fakeProposalRepo) Insert(_ context.Context, customerID, vehicleID, sellerUserID, dealershipID int64, price decimal.Decimal, notes string) (int64, error) {
	id := r.s.nextProposalID
	r.s.nextProposalID++
	r.s.proposals[id] = &entity.SaleProposal{
		ID: id, CustomerID: customerID, VehicleID: vehicleID,
		SellerUserID: sellerUserID, DealershipID: dealershipID,
		Price: price, Notes: notes, Status: entity.ProposalStatusActive,
	}
	return id, nil
}

func (r *fakeProposalRepo) Update(_ context.Context, id int64, price decimal.Decimal, notes, status string) error {
	p, ok := r.s.proposals[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price, p.Notes, p.Status = price, notes, status
	return nil
}

func (r *fakeProposalRepo) SetStatus(_ context.Context, id int64, status string) error {
	p, ok := r.s.proposals[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *fakeProposalRepo) IsSold(_ context.Context, id int64) (bool, error) {
	_, sold := r.s.saleByProposal[id]
	return sold, nil
}

func (r *fakeProposalRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, sold := r.s.saleByProposal[id]; sold {
		return false, domain.ErrConflict
	}
	if _, ok := r.s.proposals[id]; !ok {
		return false, nil
	}
	delete(r.s.proposals, id)
	return true, nil
}

// fakeSaleRepo implementa repository.SaleRepository sobre fakeStore.
type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) ListForSales(context.Context) ([]entity.SaleSummary, error) {
	return nil, nil
}

func (r *fakeSaleRepo) GetDetail(context.Context, int64) (*entity.SaleDetail, error) {
	return nil, nil
}

func (r *fakeSaleRepo) CreateFromProposal(_ context.Context, proposalID int64, _ time.Time) (int64, error) {
	if _, ok := r.s.proposals[proposalID]; !ok {
		return 0, domain.ErrNotFound
	}
	if _, exists := r.s.saleByProposal[proposalID]; exists {
		return 0, domain.ErrConflict
	}
	id := r.s.nextSaleID
	r.s.nextSaleID++
	r.s.saleByProposal[proposalID] = id
	return id, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; si el
// callback falla, descarta los cambios de venta como haría el rollback.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunSales(ctx context.Context, fn func(repository.ProposalRepository, repository.SaleRepository) error) error {
	backupSales := make(map[int64]int64, len(t.s.saleByProposal))
	for k, v := range t.s.saleByProposal {
		backupSales[k] = v
	}
	err := fn(&fakeProposalRepo{s: t.s}, &fakeSaleRepo{s: t.s})
	if err != nil {
		t.s.saleByProposal = backupSales
	}
	return err
}

func newProposalUC(s *fakeStore) *sales.ProposalUseCase {
	return sales.NewProposalUseCase(&fakeProposalRepo{s: s}, &fakeTxRunner{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProposalCreate_PrecioDebeSerPositivo(t *testing.T) {
	s := newFakeStore()
	uc := newProposalUC(s)

	_, err := uc.Create(context.Background(), 1, 1, dto.CreateProposalRequest{
		CustomerID: 1, VehicleID: 1, Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(context.Background(), 1, 1, dto.CreateProposalRequest{
		CustomerID: 1, VehicleID: 1, Price: decimal.NewFromInt(25000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusActive, out.Status)
}

func TestProposalAccept_CreaVentaYMarcaAccepted(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal(entity.ProposalStatusActive, "30000")
	uc := newProposalUC(s)

	out, err := uc.Accept(context.Background(), id, dto.AcceptProposalRequest{SaleDate: "2026-08-30"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.SaleID)
	assert.Equal(t, entity.ProposalStatusAccepted, s.proposals[id].Status)
}

// La doble aceptación choca con la unicidad de sale.proposal_id y ninguna
// parte de la segunda transacción queda aplicada.
func TestProposalAccept_DobleAceptacionConflicto(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal(entity.ProposalStatusActive, "30000")
	uc := newProposalUC(s)

	_, err := uc.Accept(context.Background(), id, dto.AcceptProposalRequest{})
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), id, dto.AcceptProposalRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, s.saleByProposal, 1, "solo debe existir una venta")
}

func TestProposalAccept_NoExiste(t *testing.T) {
	s := newFakeStore()
	uc := newProposalUC(s)

	_, err := uc.Accept(context.Background(), 404, dto.AcceptProposalRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProposalAccept_FechaInvalida(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal(entity.ProposalStatusActive, "30000")
	uc := newProposalUC(s)

	_, err := uc.Accept(context.Background(), id, dto.AcceptProposalRequest{SaleDate: "30/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProposalUpdate_AceptadaNoSeEdita(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal(entity.ProposalStatusAccepted, "30000")
	uc := newProposalUC(s)

	_, err := uc.Update(context.Background(), id, dto.UpdateProposalRequest{
		Price: decimal.NewFromInt(35000),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, s.proposals[id].Price.Equal(decimal.NewFromInt(30000)), "el precio no debe cambiar")
}

func TestProposalUpdate_EstadoVacioConservaElActual(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal("INACTIVE", "30000")
	uc := newProposalUC(s)

	out, err := uc.Update(context.Background(), id, dto.UpdateProposalRequest{
		Price: decimal.NewFromInt(28000),
	})
	require.NoError(t, err)
	assert.Equal(t, "INACTIVE", out.Status)
	assert.True(t, s.proposals[id].Price.Equal(decimal.NewFromInt(28000)))
}

func TestProposalDelete_VendidaEsConflicto(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal(entity.ProposalStatusActive, "30000")
	uc := newProposalUC(s)

	_, err := uc.Accept(context.Background(), id, dto.AcceptProposalRequest{})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, s.proposals, id, "la propuesta aceptada no debe borrarse")
}

func TestProposalDelete_SinVentaBorra(t *testing.T) {
	s := newFakeStore()
	id := s.addProposal(entity.ProposalStatusActive, "30000")
	uc := newProposalUC(s)

	require.NoError(t, uc.Delete(context.Background(), id))
	assert.NotContains(t, s.proposals, id)

	err := uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProposalGetDetail_EditableSegunEstado(t *testing.T) {
	s := newFakeStore()
	activa := s.addProposal(entity.ProposalStatusActive, "30000")
	aceptada := s.addProposal(entity.ProposalStatusAccepted, "45000")
	uc := newProposalUC(s)

	out, err := uc.GetDetail(context.Background(), activa)
	require.NoError(t, err)
	assert.True(t, out.Editable)
	assert.Equal(t, "00001", out.Code)

	out, err = uc.GetDetail(context.Background(), aceptada)
	require.NoError(t, err)
	assert.False(t, out.Editable)
}
