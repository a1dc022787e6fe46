package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// ProposalUseCase propuestas de venta: listado, detalle, alta, edición,
// borrado con regla de seguridad y aceptación transaccional.
type ProposalUseCase struct {
	proposals repository.ProposalRepository
	tx        TxRunner
}

// NewProposalUseCase construye el caso de uso.
func NewProposalUseCase(proposals repository.ProposalRepository, tx TxRunner) *ProposalUseCase {
	return &ProposalUseCase{proposals: proposals, tx: tx}
}

// List lista todas las propuestas, más recientes primero.
func (uc *ProposalUseCase) List(ctx context.Context) ([]dto.ProposalRowResponse, error) {
	rows, err := uc.proposals.ListForSales(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProposalRowResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ProposalRowResponse{
			ID:       p.ID,
			Code:     dto.DisplayCode(p.ID),
			Vehicle:  dto.SafeText(p.VehicleText),
			Customer: dto.SafeText(p.CustomerName),
			Price:    dto.FormatPrice(p.Price),
			Status:   dto.SafeText(p.Status),
		})
	}
	return out, nil
}

// GetDetail devuelve el detalle de una propuesta.
func (uc *ProposalUseCase) GetDetail(ctx context.Context, id int64) (*dto.ProposalDetailResponse, error) {
	p, err := uc.proposals.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProposalDetailResponse(p), nil
}

// Create crea una propuesta ACTIVE para el vendedor y concesionario del token.
func (uc *ProposalUseCase) Create(ctx context.Context, sellerUserID, dealershipID int64, in dto.CreateProposalRequest) (*dto.CreateProposalResponse, error) {
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.proposals.Insert(ctx, in.CustomerID, in.VehicleID, sellerUserID, dealershipID, in.Price, in.Notes)
	if err != nil {
		return nil, err
	}
	return &dto.CreateProposalResponse{ID: id, Status: entity.ProposalStatusActive}, nil
}

// Update edita precio, notas y estado. Las propuestas ACCEPTED no se tocan;
// ACCEPTED tampoco puede fijarse por aquí (solo el endpoint de aceptación).
func (uc *ProposalUseCase) Update(ctx context.Context, id int64, in dto.UpdateProposalRequest) (*dto.ProposalDetailResponse, error) {
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.proposals.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if entity.NormalizeStatus(current.Status) == entity.ProposalStatusAccepted {
		return nil, domain.ErrConflict
	}
	status := in.Status
	if status == "" {
		status = current.Status
	}
	if err := uc.proposals.Update(ctx, id, in.Price, in.Notes, status); err != nil {
		return nil, err
	}
	updated, err := uc.proposals.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toProposalDetailResponse(updated), nil
}

// Delete borra una propuesta solo si ninguna venta la referencia.
// El chequeo previo evita el error de FK; si una aceptación concurrente se
// cuela entre el chequeo y el borrado, la FK de sale lo detiene igualmente
// y se responde el mismo conflicto.
func (uc *ProposalUseCase) Delete(ctx context.Context, id int64) error {
	sold, err := uc.proposals.IsSold(ctx, id)
	if err != nil {
		return err
	}
	if sold {
		return domain.ErrConflict
	}
	ok, err := uc.proposals.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Accept convierte la propuesta en venta: inserta la venta copiando los datos
// de la propuesta y marca la propuesta ACCEPTED, todo en una transacción.
// Un segundo intento falla por la unicidad de sale.proposal_id (conflicto).
func (uc *ProposalUseCase) Accept(ctx context.Context, id int64, in dto.AcceptProposalRequest) (*dto.AcceptProposalResponse, error) {
	saleDate := time.Now()
	if in.SaleDate != "" {
		parsed, err := time.Parse("2006-01-02", in.SaleDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		saleDate = parsed
	}

	var saleID int64
	err := uc.tx.RunSales(ctx, func(proposals repository.ProposalRepository, salesRepo repository.SaleRepository) error {
		var err error
		saleID, err = salesRepo.CreateFromProposal(ctx, id, saleDate)
		if err != nil {
			return err
		}
		return proposals.SetStatus(ctx, id, entity.ProposalStatusAccepted)
	})
	if err != nil {
		return nil, err
	}
	return &dto.AcceptProposalResponse{SaleID: saleID}, nil
}

func toProposalDetailResponse(p *entity.ProposalDetail) *dto.ProposalDetailResponse {
	return &dto.ProposalDetailResponse{
		ID:           p.ID,
		Code:         dto.DisplayCode(p.ID),
		CustomerID:   p.CustomerID,
		VehicleID:    p.VehicleID,
		CustomerName: dto.SafeText(p.CustomerName),
		Vehicle:      dto.SafeText(p.VehicleText),
		Price:        p.Price,
		Notes:        p.Notes,
		Status:       dto.SafeText(p.Status),
		Editable:     entity.NormalizeStatus(p.Status) != entity.ProposalStatusAccepted,
	}
}
