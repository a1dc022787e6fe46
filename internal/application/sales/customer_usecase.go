package sales

import (
	"context"
	"strings"
	"unicode"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CustomerUseCase casos de uso del módulo de ventas para clientes:
// listado con búsqueda, detalle, alta, edición y borrado lógico.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista clientes activos. Con q no vacío filtra por nombre, apellido,
// email o teléfono, ignorando mayúsculas y tildes ("garcia" encuentra "García").
func (uc *CustomerUseCase) List(ctx context.Context, q string) ([]dto.CustomerRowResponse, error) {
	rows, err := uc.repo.ListForSales(ctx)
	if err != nil {
		return nil, err
	}
	needle := foldText(q)
	out := make([]dto.CustomerRowResponse, 0, len(rows))
	for _, c := range rows {
		if needle != "" {
			haystack := foldText(c.FirstName + " " + c.LastName + " " + c.Email + " " + c.Phone)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, dto.CustomerRowResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		})
	}
	return out, nil
}

// GetDetail devuelve el detalle de un cliente por id.
func (uc *CustomerUseCase) GetDetail(ctx context.Context, id int64) (*dto.CustomerDetailResponse, error) {
	c, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CustomerDetailResponse{
		ID:        c.ID,
		DNI:       c.DNI,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Active:    c.Active,
	}, nil
}

// Create da de alta un cliente activo. DNI duplicado responde conflicto.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CreateCustomerResponse, error) {
	id, err := uc.repo.Insert(ctx, strings.TrimSpace(in.DNI), strings.TrimSpace(in.FirstName),
		strings.TrimSpace(in.LastName), strings.TrimSpace(in.Phone), strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	return &dto.CreateCustomerResponse{ID: id}, nil
}

// Update actualiza los datos de contacto de un cliente (el DNI no se toca).
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) error {
	ok, err := uc.repo.Update(ctx, id, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName),
		strings.TrimSpace(in.Phone), strings.TrimSpace(in.Email))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete marca el cliente como inactivo (borrado lógico: las reparaciones y
// ventas históricas siguen referenciándolo).
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// foldTransformer descompone (NFD), elimina las marcas diacríticas y
// recompone (NFC): "García" -> "Garcia".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText normaliza un texto para comparación: sin tildes y en minúsculas.
func foldText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
