package repository

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	// ListForCombo lista clientes activos en formato id/nombre ("Nombre Apellido (DNI)").
	ListForCombo(ctx context.Context) ([]entity.IDName, error)

	// ListForSales lista clientes activos para la tabla del módulo de ventas.
	ListForSales(ctx context.Context) ([]entity.CustomerSummary, error)

	// GetDetail devuelve el detalle de un cliente por id (incluye inactivos), o nil.
	GetDetail(ctx context.Context, id int64) (*entity.Customer, error)

	// Insert crea un cliente activo y devuelve su id.
	// Devuelve domain.ErrDuplicate si el DNI ya existe.
	Insert(ctx context.Context, dni, firstName, lastName, phone, email string) (int64, error)

	// Update actualiza los datos de contacto. Devuelve false si no existe.
	Update(ctx context.Context, id int64, firstName, lastName, phone, email string) (bool, error)

	// SoftDelete marca el cliente como inactivo (active = false) para
	// preservar las FK históricas. Devuelve false si no existe.
	SoftDelete(ctx context.Context, id int64) (bool, error)
}
