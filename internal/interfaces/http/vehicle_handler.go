package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
)

// VehicleHandler maneja el inventario de vehículos (solo lectura).
type VehicleHandler struct {
	uc *sales.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *sales.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// List godoc
// @Summary      Listar vehículos
// @Tags         vehicles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VehicleRowResponse
// @Router       /api/sales/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Detalle de un vehículo
// @Tags         vehicles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del vehículo"
// @Success      200  {object}  dto.VehicleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetDetail(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
