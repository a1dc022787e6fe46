package repository

import (
	"context"

	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios:
// autenticación y gestión de mecánicos por parte del jefe de taller.
//
// Las lecturas con bossID incorporan el filtro de autorización en la consulta
// (self-join sobre la fila del jefe para comparar dealership_id); un resultado
// nil/false significa indistintamente "no existe" o "sin permisos".
type UserRepository interface {
	// FindActiveByUsername devuelve el usuario activo con ese username
	// (rol resuelto vía join con role), o nil si no existe.
	FindActiveByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindActiveMechanics lista los mecánicos activos para combos
	// (sin alcance por concesionario, como en el flujo original).
	FindActiveMechanics(ctx context.Context) ([]entity.IDName, error)

	// FindMechanicsWithSkills lista los mecánicos del concesionario del jefe
	// con sus habilidades y estado.
	FindMechanicsWithSkills(ctx context.Context, bossID int64) ([]entity.MechanicSkill, error)

	// FindMechanicSkills devuelve las habilidades de un mecánico solo si
	// pertenece al concesionario del jefe; nil si no existe o sin permisos.
	FindMechanicSkills(ctx context.Context, bossID, mechanicID int64) (*string, error)

	// UpdateMechanicSkills actualiza las habilidades de un mecánico del
	// concesionario del jefe. Devuelve false si no se afectó ninguna fila.
	UpdateMechanicSkills(ctx context.Context, bossID, mechanicID int64, skills string) (bool, error)
}
