package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/pkg/validate"
)

// RepairHandler maneja las reparaciones del jefe de taller
// (crear, listar, detalle de edición, asignar y desasignar mecánico).
type RepairHandler struct {
	uc *workshop.RepairUseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *workshop.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reparación
// @Description  Nace en ASSIGNED: el jefe elige mecánico al crearla.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepairRequest  true  "Datos de la reparación"
// @Success      201   {object}  dto.CreateRepairResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/boss/repairs [post]
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepairRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vehicle_id, customer_id, mechanic_id y notes son requeridos"})
	}
	out, err := h.uc.CreateRepair(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencias inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reparaciones del jefe
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RepairTaskResponse
// @Router       /api/boss/repairs [get]
func (h *RepairHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListBossRepairs(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
//
// 404 cubre a la vez "no existe" y "es de otro jefe": el filtro de propiedad
// va dentro de la consulta y no se distingue el caso.
//
// @Summary      Detalle de edición de una reparación
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la reparación"
// @Success      200  {object}  dto.BossRepairEditResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boss/repairs/{id} [get]
func (h *RepairHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetBossEditDetails(c.Context(), id, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar mecánico y actualizar notas
// @Description  Solo sobre reparaciones propias en PENDING o ASSIGNED.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID de la reparación"
// @Param        body  body  dto.AssignMechanicRequest  true  "mechanic_id y notas"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boss/repairs/{id}/assign [put]
func (h *RepairHandler) Assign(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.AssignMechanicRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mechanic_id es requerido"})
	}
	if err := h.uc.AssignMechanic(c.Context(), id, GetUserID(c), in); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada o no editable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unassign godoc
// @Summary      Quitar mecánico (vuelve a PENDING)
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID de la reparación"
// @Param        body  body  dto.UnassignMechanicRequest  true  "notas"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boss/repairs/{id}/unassign [put]
func (h *RepairHandler) Unassign(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UnassignMechanicRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UnassignMechanic(c.Context(), id, GetUserID(c), in); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada o no editable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
