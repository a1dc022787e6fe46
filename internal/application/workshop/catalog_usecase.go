package workshop

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
	"github.com/tu-usuario/concesionario-pro/internal/domain/repository"
)

// CatalogUseCase fuentes de los combos de la pantalla de registro de
// reparaciones: clientes activos, vehículos y mecánicos activos.
type CatalogUseCase struct {
	customers repository.CustomerRepository
	vehicles  repository.VehicleRepository
	users     repository.UserRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(customers repository.CustomerRepository, vehicles repository.VehicleRepository, users repository.UserRepository) *CatalogUseCase {
	return &CatalogUseCase{customers: customers, vehicles: vehicles, users: users}
}

// Customers lista clientes activos como "Nombre Apellido (DNI)".
func (uc *CatalogUseCase) Customers(ctx context.Context) ([]dto.IDNameResponse, error) {
	rows, err := uc.customers.ListForCombo(ctx)
	if err != nil {
		return nil, err
	}
	return toIDNameResponses(rows, "Customer"), nil
}

// Vehicles lista vehículos como "marca modelo".
func (uc *CatalogUseCase) Vehicles(ctx context.Context) ([]dto.IDNameResponse, error) {
	rows, err := uc.vehicles.ListForCombo(ctx)
	if err != nil {
		return nil, err
	}
	return toIDNameResponses(rows, "Vehicle"), nil
}

// Mechanics lista mecánicos activos. Sin alcance por concesionario,
// igual que el combo de la pantalla original.
func (uc *CatalogUseCase) Mechanics(ctx context.Context) ([]dto.IDNameResponse, error) {
	rows, err := uc.users.FindActiveMechanics(ctx)
	if err != nil {
		return nil, err
	}
	return toIDNameResponses(rows, "Mechanic"), nil
}

// toIDNameResponses mapea los pares id/nombre con fallback "Tipo #id" si el
// nombre viene vacío.
func toIDNameResponses(rows []entity.IDName, kind string) []dto.IDNameResponse {
	out := make([]dto.IDNameResponse, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			name = fmt.Sprintf("%s #%d", kind, r.ID)
		}
		out = append(out, dto.IDNameResponse{ID: r.ID, Name: name})
	}
	return out
}
