package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrNoRecipe            = errors.New("el producto no tiene receta configurada")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrPriceNotConfigured  = errors.New("el producto no tiene precio configurado para ese tamaño")
	ErrInvalidProductType  = errors.New("tipo de producto inválido para la operación")
	ErrTransientStorage    = errors.New("fallo transitorio de almacenamiento")
)

// InsufficientStockError detalla el primer ingrediente sin stock suficiente.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando.
type InsufficientStockError struct {
	IngredientID   string
	IngredientName string
	Required       decimal.Decimal // en unidad base
	Available      decimal.Decimal // en unidad base
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: requerido %s, disponible %s",
		e.IngredientName, e.Required.String(), e.Available.String())
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
