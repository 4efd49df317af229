package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
)

// errorResponse traduce errores de dominio a respuestas HTTP. Los conflictos de
// negocio (stock, receta, precio, tipo de ítem) van como 409 para que el POS
// los distinga de entradas malformadas; los fallos transitorios de
// almacenamiento van como 503 y el cliente puede reintentar tal cual.
func errorResponse(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente de %s: se requieren %s, hay %s",
				insufficient.IngredientName, insufficient.Required, insufficient.Available),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrNoRecipe):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_RECIPE", Message: "el producto no tiene receta para ese tamaño"})
	case errors.Is(err, domain.ErrPriceNotConfigured):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRICE_NOT_CONFIGURED", Message: "el producto no tiene precio configurado para ese tamaño"})
	case errors.Is(err, domain.ErrInvalidProductType):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT_TYPE", Message: "el ítem no admite esa operación"})
	case errors.Is(err, domain.ErrTransientStorage):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TRANSIENT", Message: "almacenamiento no disponible, reintente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
