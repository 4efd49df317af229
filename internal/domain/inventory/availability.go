package inventory

import (
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CheckAvailability valida, antes de cualquier mutación, que cada línea de
// receta tiene stock suficiente en unidad base para la cantidad solicitada.
// Corta en el primer faltante (no agrega todos los faltantes en un reporte).
// Una receta vacía es error duro: un producto vendible debe tener receta.
func CheckAvailability(lines []*entity.RecipeLine, ingredients map[string]*entity.Ingredient, quantity int64) error {
	if len(lines) == 0 {
		return domain.ErrNoRecipe
	}
	qty := decimal.NewFromInt(quantity)
	for _, line := range lines {
		ing := ingredients[line.IngredientID]
		if ing == nil {
			return domain.ErrNotFound
		}
		required := line.AmountPerUnit.Mul(qty)
		if ing.TotalContentStock.LessThan(required) {
			return &domain.InsufficientStockError{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Required:       required,
				Available:      ing.TotalContentStock,
			}
		}
	}
	return nil
}
