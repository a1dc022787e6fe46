package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
)

// TaskHandler maneja el flujo del mecánico: sus tareas, el detalle, las
// transiciones start/finish y el historial de trabajos terminados.
type TaskHandler struct {
	uc *workshop.RepairUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *workshop.RepairUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// List godoc
// @Summary      Tareas asignadas al mecánico
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RepairTaskResponse
// @Router       /api/mechanic/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListTasks(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Detalle de una tarea
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la reparación"
// @Success      200  {object}  dto.RepairDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mechanic/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetDetails(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Start godoc
//
// 404 cubre "no existe" y "no está en ASSIGNED": la transición es un único
// UPDATE con el guard en el WHERE.
//
// @Summary      Iniciar reparación (ASSIGNED -> IN_PROGRESS)
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  int  true  "ID de la reparación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mechanic/tasks/{id}/start [post]
func (h *TaskHandler) Start(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.StartRepair(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada o no iniciable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Finish godoc
// @Summary      Finalizar reparación (IN_PROGRESS -> FINISHED)
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  int  true  "ID de la reparación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mechanic/tasks/{id}/finish [post]
func (h *TaskHandler) Finish(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.FinishRepair(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada o no finalizable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Reparaciones terminadas del mecánico
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RepairHistoryResponse
// @Router       /api/mechanic/history [get]
func (h *TaskHandler) History(c *fiber.Ctx) error {
	list, err := h.uc.History(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
