package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
)

// CashMovementHandler movimientos de caja.
type CashMovementHandler struct {
	uc *usecase.CashMovementUseCase
}

// NewCashMovementHandler construye el handler.
func NewCashMovementHandler(uc *usecase.CashMovementUseCase) *CashMovementHandler {
	return &CashMovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Tags         cash-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashMovementRequest  true  "tipo IN|OUT, monto, descripcion"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/cash-movements [post]
func (h *CashMovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashMovementRequest
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
// @Summary      Obtener movimiento por ID
// @Tags         cash-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.CashMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-movements/{id} [get]
func (h *CashMovementHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar movimientos (más reciente primero)
// @Tags         cash-movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CashMovementResponse]
// @Router       /api/cash-movements [get]
func (h *CashMovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListForUser godoc
// @Summary      Movimientos de un usuario, opcionalmente de un día
// @Tags         cash-movements
// @Security     Bearer
// @Produce      json
// @Param        usuarioId  path   int     true   "ID del usuario"
// @Param        date       query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ListResponse[dto.CashMovementResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cash-movements/usuario/{usuarioId} [get]
func (h *CashMovementHandler) ListForUser(c *fiber.Ctx) error {
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
// @Summary      Corregir movimiento
// @Tags         cash-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del movimiento"
// @Param        body  body  dto.UpdateCashMovementRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cash-movements/{id} [patch]
func (h *CashMovementHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCashMovementRequest
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
// @Summary      Eliminar movimiento
// @Tags         cash-movements
// @Security     Bearer
// @Param        id   path  int  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-movements/{id} [delete]
func (h *CashMovementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
