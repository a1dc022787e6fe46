package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
)

// MechanicHandler maneja el roster de mecánicos del jefe de taller y la
// edición de sus habilidades.
type MechanicHandler struct {
	uc *workshop.MechanicUseCase
}

// NewMechanicHandler construye el handler.
func NewMechanicHandler(uc *workshop.MechanicUseCase) *MechanicHandler {
	return &MechanicHandler{uc: uc}
}

// List godoc
// @Summary      Mecánicos del concesionario del jefe
// @Tags         mechanics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MechanicSkillResponse
// @Router       /api/boss/mechanics [get]
func (h *MechanicHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListRoster(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetSkills godoc
// @Summary      Habilidades de un mecánico
// @Tags         mechanics
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del mecánico"
// @Success      200  {object}  dto.SkillsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boss/mechanics/{id}/skills [get]
func (h *MechanicHandler) GetSkills(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetSkills(c.Context(), GetUserID(c), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mecánico no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateSkills godoc
// @Summary      Actualizar habilidades de un mecánico
// @Description  Solo mecánicos del mismo concesionario que el jefe.
// @Tags         mechanics
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del mecánico"
// @Param        body  body  dto.UpdateSkillsRequest  true  "Texto de habilidades"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boss/mechanics/{id}/skills [put]
func (h *MechanicHandler) UpdateSkills(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateSkillsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateSkills(c.Context(), GetUserID(c), id, in); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mecánico no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
