package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/pos"
)

// InventoryHandler maneja las peticiones HTTP de ajustes y consultas de inventario.
type InventoryHandler struct {
	uc    *pos.StockAdjustUseCase
	query *pos.InventoryQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *pos.StockAdjustUseCase, query *pos.InventoryQueryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, query: query}
}

// AddStock godoc
// @Summary      Registrar entrada de stock
// @Description  Entrada fuera del flujo venta/merma: entrega de proveedor o corrección manual. Cantidad en unidad base.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "ingredient_id, quantity, notes, staff_id"
// @Success      201   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.AddStock(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListIngredients godoc
// @Summary      Listar ingredientes
// @Tags         inventory
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría. Vacío = todas."
// @Param        limit     query  int     false  "Tamaño de página (default 20)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.IngredientResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/ingredients [get]
func (h *InventoryHandler) ListIngredients(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.query.ListIngredients(c.Context(), c.Query("category"), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "ingredients": list})
}

// ListMovements godoc
// @Summary      Movimientos de un ingrediente
// @Description  Rastro de auditoría del libro de stock, del más reciente al más antiguo.
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID del ingrediente"
// @Param        from    query  string  false  "Desde (RFC 3339)"
// @Param        to      query  string  false  "Hasta (RFC 3339)"
// @Param        limit   query  int     false  "Tamaño de página (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/ingredients/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, se espera RFC 3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, se espera RFC 3339"})
	}
	list, err := h.query.ListMovements(c.Context(), c.Params("id"), from, to, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}

// MovementsByReference godoc
// @Summary      Movimientos por referencia
// @Description  Todas las patas (consumo y restauraciones) de una venta, merma o ajuste.
// @Tags         inventory
// @Produce      json
// @Param        reference  query  string  true  "ID de venta, merma o ajuste"
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) MovementsByReference(c *fiber.Ctx) error {
	list, err := h.query.ListMovementsByReference(c.Context(), c.Query("reference"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
