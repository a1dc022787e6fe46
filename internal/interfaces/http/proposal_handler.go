package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
	"github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/domain"
	"github.com/tu-usuario/concesionario-pro/pkg/validate"
)

// ProposalHandler maneja las propuestas de venta, incluida la aceptación
// que las convierte en venta.
type ProposalHandler struct {
	uc *sales.ProposalUseCase
}

// NewProposalHandler construye el handler.
func NewProposalHandler(uc *sales.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{uc: uc}
}

// List godoc
// @Summary      Listar propuestas de venta
// @Tags         proposals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProposalRowResponse
// @Router       /api/sales/proposals [get]
func (h *ProposalHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Detalle de una propuesta
// @Tags         proposals
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la propuesta"
// @Success      200  {object}  dto.ProposalDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/proposals/{id} [get]
func (h *ProposalHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetDetail(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propuesta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
//
// El vendedor y el concesionario salen del token, nunca del body.
//
// @Summary      Crear propuesta de venta
// @Tags         proposals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProposalRequest  true  "Cliente, vehículo y precio"
// @Success      201   {object}  dto.CreateProposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/proposals [post]
func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, vehicle_id y price son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), GetDealershipID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el precio debe ser mayor que cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar propuesta
// @Description  Una propuesta aceptada no se puede editar.
// @Tags         proposals
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID de la propuesta"
// @Param        body  body  dto.UpdateProposalRequest  true  "Precio, notas y estado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/proposals/{id} [put]
func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price es requerido; status debe ser ACTIVE o INACTIVE"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propuesta no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "una propuesta aceptada no se puede editar"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el precio debe ser mayor que cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propuesta
// @Description  Se rechaza si ya tiene una venta asociada.
// @Tags         proposals
// @Security     Bearer
// @Param        id  path  int  true  "ID de la propuesta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/proposals/{id} [delete]
func (h *ProposalHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propuesta no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la propuesta ya tiene una venta asociada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Accept godoc
//
// Crea la venta y marca la propuesta ACCEPTED en una transacción.
//
// @Summary      Aceptar propuesta (crea la venta)
// @Tags         proposals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la propuesta"
// @Param        body  body  dto.AcceptProposalRequest  true  "Fecha de la venta"
// @Success      201   {object}  dto.AcceptProposalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Ya aceptada"
// @Router       /api/sales/proposals/{id}/accept [post]
func (h *ProposalHandler) Accept(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.AcceptProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_date debe tener formato AAAA-MM-DD"})
	}
	out, err := h.uc.Accept(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propuesta no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la propuesta ya fue aceptada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
