package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/auth"
	"github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	RepairUC   *workshop.RepairUseCase
	MechanicUC *workshop.MechanicUseCase
	CatalogUC  *workshop.CatalogUseCase
	CustomerUC *sales.CustomerUseCase
	VehicleUC  *sales.VehicleUseCase
	ProposalUC *sales.ProposalUseCase
	SaleUC     *sales.SaleUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Cada grupo funcional lleva su propio
// guard de rol; OWNER entra a todos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Jefe de taller
	boss := protected.Group("/boss", RequireRole(entity.RoleChiefMechanic, entity.RoleOwner))

	repairHandler := NewRepairHandler(deps.RepairUC)
	boss.Get("/repairs", repairHandler.List)
	boss.Post("/repairs", repairHandler.Create)
	boss.Get("/repairs/:id", repairHandler.GetByID)
	boss.Put("/repairs/:id/assign", repairHandler.Assign)
	boss.Put("/repairs/:id/unassign", repairHandler.Unassign)

	mechanicHandler := NewMechanicHandler(deps.MechanicUC)
	boss.Get("/mechanics", mechanicHandler.List)
	boss.Get("/mechanics/:id/skills", mechanicHandler.GetSkills)
	boss.Put("/mechanics/:id/skills", mechanicHandler.UpdateSkills)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog := boss.Group("/catalog")
	catalog.Get("/customers", catalogHandler.Customers)
	catalog.Get("/vehicles", catalogHandler.Vehicles)
	catalog.Get("/mechanics", catalogHandler.Mechanics)

	// Mecánico
	mechanic := protected.Group("/mechanic", RequireRole(entity.RoleMechanic, entity.RoleOwner))

	taskHandler := NewTaskHandler(deps.RepairUC)
	mechanic.Get("/tasks", taskHandler.List)
	mechanic.Get("/tasks/:id", taskHandler.GetByID)
	mechanic.Post("/tasks/:id/start", taskHandler.Start)
	mechanic.Post("/tasks/:id/finish", taskHandler.Finish)
	mechanic.Get("/history", taskHandler.History)

	// Ventas
	salesGroup := protected.Group("/sales", RequireRole(entity.RoleSales, entity.RoleOwner))

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	salesGroup.Get("/customers", customerHandler.List)
	salesGroup.Post("/customers", customerHandler.Create)
	salesGroup.Get("/customers/:id", customerHandler.GetByID)
	salesGroup.Put("/customers/:id", customerHandler.Update)
	salesGroup.Delete("/customers/:id", customerHandler.Delete)

	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	salesGroup.Get("/vehicles", vehicleHandler.List)
	salesGroup.Get("/vehicles/:id", vehicleHandler.GetByID)

	proposalHandler := NewProposalHandler(deps.ProposalUC)
	salesGroup.Get("/proposals", proposalHandler.List)
	salesGroup.Post("/proposals", proposalHandler.Create)
	salesGroup.Get("/proposals/:id", proposalHandler.GetByID)
	salesGroup.Put("/proposals/:id", proposalHandler.Update)
	salesGroup.Delete("/proposals/:id", proposalHandler.Delete)
	salesGroup.Post("/proposals/:id/accept", proposalHandler.Accept)

	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/sales", saleHandler.List)
	salesGroup.Get("/sales/:id", saleHandler.GetByID)
	salesGroup.Get("/sales/:id/pdf", saleHandler.ReceiptPDF)
}
