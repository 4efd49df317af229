package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/pos"
)

// WasteHandler maneja las peticiones HTTP de mermas.
type WasteHandler struct {
	uc *pos.WasteUseCase
}

// NewWasteHandler construye el handler.
func NewWasteHandler(uc *pos.WasteUseCase) *WasteHandler {
	return &WasteHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar merma
// @Description  Acepta producto terminado (size_variant obligatorio, cantidad entera) o insumo crudo (size_variant vacío, cantidad en unidad base).
// @Tags         waste
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWasteRequest  true  "product_id, size_variant, quantity, reason, staff_id"
// @Success      201   {object}  dto.WasteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/waste [post]
func (h *WasteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateWaste(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Edit godoc
// @Summary      Editar merma
// @Description  Restaura el stock de la merma original y aplica los nuevos parámetros como una sola transacción.
// @Tags         waste
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la merma"
// @Param        body  body  dto.EditWasteRequest  true  "nuevos product_id, size_variant, quantity, reason, staff_id"
// @Success      200   {object}  dto.WasteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/waste/{id} [put]
func (h *WasteHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.EditWaste(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Anular merma
// @Description  Restaura el stock descontado y elimina el registro.
// @Tags         waste
// @Produce      json
// @Param        id  path  string  true  "ID de la merma"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/waste/{id} [delete]
func (h *WasteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteWaste(c.Context(), c.Params("id"), c.Query("staff_id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "merma anulada"})
}

// GetByID godoc
// @Summary      Consultar merma
// @Tags         waste
// @Produce      json
// @Param        id  path  string  true  "ID de la merma"
// @Success      200  {object}  dto.WasteDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/waste/{id} [get]
func (h *WasteHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetWaste(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
