package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// ReasonHandler maneja las peticiones HTTP para motivos de salida (protegido).
// Los motivos nunca se borran: se desactivan para preservar el histórico.
type ReasonHandler struct {
	uc *usecase.ReasonUseCase
}

// NewReasonHandler construye el handler.
func NewReasonHandler(uc *usecase.ReasonUseCase) *ReasonHandler {
	return &ReasonHandler{uc: uc}
}

// Create godoc
// @Summary      Crear motivo de salida
// @Tags         reasons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReasonRequest  true  "Nombre"
// @Success      201   {object}  dto.ReasonResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reasons [post]
func (h *ReasonHandler) Create(c *fiber.Ctx) error {
	var in dto.ReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar motivos de salida
// @Tags         reasons
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool  false  "Solo motivos activos"  default(false)
// @Success      200  {array}  dto.ReasonResponse
// @Router       /api/reasons [get]
func (h *ReasonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("only_active", false))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar motivo de salida
// @Tags         reasons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del motivo"
// @Param        body  body  dto.ReasonRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ReasonResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reasons/{id} [put]
func (h *ReasonHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar motivo de salida
// @Tags         reasons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del motivo"
// @Param        body  body  object{active=bool}  true  "Nuevo estado"
// @Success      200   {object}  dto.ReasonResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reasons/{id}/active [put]
func (h *ReasonHandler) SetActive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetActive(id, in.Active)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
