package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
)

// TicketItemHandler líneas de ticket. El total siempre lo calcula el servidor.
type TicketItemHandler struct {
	uc *usecase.TicketItemUseCase
}

// NewTicketItemHandler construye el handler.
func NewTicketItemHandler(uc *usecase.TicketItemUseCase) *TicketItemHandler {
	return &TicketItemHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar línea a un ticket
// @Tags         ticket-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketItemRequest  true  "ticketId, productoId, cantidad, precioUnitario"
// @Success      201   {object}  dto.TicketItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ticket-items [post]
func (h *TicketItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketItemRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea por ID
// @Tags         ticket-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.TicketItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ticket-items/{id} [get]
func (h *TicketItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar líneas
// @Tags         ticket-items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.TicketItemResponse]
// @Router       /api/ticket-items [get]
func (h *TicketItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar cantidad o precio (recalcula el total)
// @Tags         ticket-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la línea"
// @Param        body  body  dto.UpdateTicketItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.TicketItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ticket-items/{id} [patch]
func (h *TicketItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateTicketItemRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea
// @Tags         ticket-items
// @Security     Bearer
// @Param        id   path  int  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ticket-items/{id} [delete]
func (h *TicketItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
