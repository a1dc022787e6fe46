package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
)

// CatalogHandler sirve las listas id/nombre que el cliente usa para poblar
// combos al registrar una reparación.
type CatalogHandler struct {
	uc *workshop.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *workshop.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Customers godoc
// @Summary      Clientes activos para combos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IDNameResponse
// @Router       /api/boss/catalog/customers [get]
func (h *CatalogHandler) Customers(c *fiber.Ctx) error {
	list, err := h.uc.Customers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Vehicles godoc
// @Summary      Vehículos para combos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IDNameResponse
// @Router       /api/boss/catalog/vehicles [get]
func (h *CatalogHandler) Vehicles(c *fiber.Ctx) error {
	list, err := h.uc.Vehicles(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Mechanics godoc
// @Summary      Mecánicos activos para combos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IDNameResponse
// @Router       /api/boss/catalog/mechanics [get]
func (h *CatalogHandler) Mechanics(c *fiber.Ctx) error {
	list, err := h.uc.Mechanics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
