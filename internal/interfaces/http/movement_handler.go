package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/dto"
)

// MovementHandler maneja custodia (check-in / check-out) y el libro de movimientos.
type MovementHandler struct {
	custody *assets.CustodyUseCase
	ledger  *assets.LedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(custody *assets.CustodyUseCase, ledger *assets.LedgerUseCase) *MovementHandler {
	return &MovementHandler{custody: custody, ledger: ledger}
}

// CheckOut godoc
// @Summary      Salida de un activo (requiere motivo activo)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.CheckOutRequest  true  "asset_id, reason_id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements/check-out [post]
func (h *MovementHandler) CheckOut(c *fiber.Ctx) error {
	var in dto.CheckOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.custody.CheckOut(c.UserContext(), GetUserID(c), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckIn godoc
// @Summary      Entrada (devolución a stock) de un activo
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.CheckInRequest  true  "asset_id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/check-in [post]
func (h *MovementHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.custody.CheckIn(c.UserContext(), GetUserID(c), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Libro de movimientos (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.ledger.ListMovements(c.UserContext(), limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
