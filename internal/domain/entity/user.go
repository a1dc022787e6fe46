package entity

// Roles válidos para User. Se guardan en la tabla role y viajan en el JWT.
const (
	RoleMechanic      = "MECHANIC"
	RoleChiefMechanic = "CHIEF_MECHANIC"
	RoleSales         = "SALES"
	RoleOwner         = "OWNER"
)

// User representa un usuario del sistema (pertenece a un concesionario).
// Los usuarios se crean fuera de esta aplicación; aquí solo se autentican
// y, en el caso de los mecánicos, se editan sus habilidades.
type User struct {
	ID           int64
	DealershipID int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // MECHANIC, CHIEF_MECHANIC, SALES, OWNER
	Skills       string // texto libre, solo mecánicos
	IsActive     bool
}

// MechanicSkill fila del roster de mecánicos del jefe de taller
// (mecánicos del mismo concesionario, con habilidades y estado).
type MechanicSkill struct {
	ID       int64
	FullName string
	Skills   string
	Active   bool
}
