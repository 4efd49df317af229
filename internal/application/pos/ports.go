package pos

import (
	"context"

	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor: cualquier
// error en fn revierte todo (sin descuentos parciales ni filas huérfanas).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		menuRepo repository.MenuRepository,
		saleRepo repository.SaleRepository,
		wasteRepo repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
