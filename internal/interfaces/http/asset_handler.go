package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/dto"
)

// AssetHandler maneja las peticiones HTTP para unidades de activo (protegido).
type AssetHandler struct {
	uc      *assets.AssetUseCase
	custody *assets.CustodyUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *assets.AssetUseCase, custody *assets.CustodyUseCase) *AssetHandler {
	return &AssetHandler{uc: uc, custody: custody}
}

// Create godoc
// @Summary      Alta de unidad de activo (tag vacío = asignación automática)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBulk godoc
// @Summary      Alta masiva de unidades (tags automáticos consecutivos)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetsBulkRequest  true  "Producto y cantidad"
// @Success      201   {array}  dto.AssetCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/bulk [post]
func (h *AssetHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.CreateAssetsBulkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBulk(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar activos (filtros: search, status)
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en tag, serial y code"
// @Param        status  query  string  false  "IN_STOCK | OUT | MAINTENANCE | DISPOSED | ALL"
// @Success      200     {array}  dto.AssetResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	status := c.Query("status")
	out, err := h.uc.List(c.UserContext(), search, status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver un identificador escaneado o tipeado (tag, code o QR)
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        value  query  string  true  "Payload escaneado o identificador"
// @Success      200    {object}  dto.AssetResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/assets/resolve [get]
func (h *AssetHandler) Resolve(c *fiber.Ctx) error {
	value := c.Query("value")
	out, err := h.uc.Resolve(c.UserContext(), value)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar atributos de un activo (el status no se edita por aquí)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar un activo (rechaza si tiene movimientos)
// @Tags         assets
// @Security     Bearer
// @Param        id  path  string  true  "ID del activo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Label godoc
// @Summary      Etiqueta imprimible del activo (PDF con QR)
// @Tags         assets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del activo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/label [get]
func (h *AssetHandler) Label(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdf, err := h.uc.Label(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// SetStatus godoc
// @Summary      Anulación administrativa de estado (MAINTENANCE o DISPOSED, solo admin)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.AdminStatusRequest  true  "Estado destino y motivo"
// @Success      200   {object}  dto.AssetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/status [put]
func (h *AssetHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdminStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.custody.AdminSetStatus(c.UserContext(), GetUserID(c), id, in); err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
