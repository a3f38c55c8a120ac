package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
)

// SessionEventHandler eventos de sesión (LOGIN/LOGOUT).
type SessionEventHandler struct {
	uc *usecase.SessionEventUseCase
}

// NewSessionEventHandler construye el handler.
func NewSessionEventHandler(uc *usecase.SessionEventUseCase) *SessionEventHandler {
	return &SessionEventHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar evento de sesión
// @Tags         session-events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSessionEventRequest  true  "tipo LOGIN|LOGOUT, timestamp opcional"
// @Success      201   {object}  dto.SessionEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/session-events [post]
func (h *SessionEventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSessionEventRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento por ID
// @Tags         session-events
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del evento"
// @Success      200  {object}  dto.SessionEventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session-events/{id} [get]
func (h *SessionEventHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar eventos (timestamp descendente)
// @Tags         session-events
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SessionEventResponse]
// @Router       /api/session-events [get]
func (h *SessionEventHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListForUser godoc
// @Summary      Eventos de un usuario, opcionalmente de un día
// @Tags         session-events
// @Security     Bearer
// @Produce      json
// @Param        usuarioId  path   int     true   "ID del usuario"
// @Param        date       query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ListResponse[dto.SessionEventResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/session-events/usuario/{usuarioId} [get]
func (h *SessionEventHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListForUser(c.UserContext(), userID, c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir evento
// @Tags         session-events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del evento"
// @Param        body  body  dto.UpdateSessionEventRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.SessionEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/session-events/{id} [patch]
func (h *SessionEventHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateSessionEventRequest
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
// @Summary      Eliminar evento
// @Tags         session-events
// @Security     Bearer
// @Param        id   path  int  true  "ID del evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session-events/{id} [delete]
func (h *SessionEventHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
