package inventory

import (
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Dirección de un ajuste de stock.
type Direction string

const (
	Add      Direction = "ADD"
	Subtract Direction = "SUBTRACT"
)

// ApplyAdjustment aplica un delta en unidad base sobre el ingrediente y
// recalcula el stock de paquetes derivado: floor(total / contenido por paquete),
// 0 si el contenido por paquete es 0. Debe ejecutarse con la fila bloqueada.
//
// Subtract revalida no-negatividad dentro del mismo ajuste: aunque el chequeo
// de disponibilidad ya pasó, el stock comprometido nunca puede quedar negativo.
// Add no tiene precondición (se usa para restaurar stock en edición/borrado).
func ApplyAdjustment(ing *entity.Ingredient, baseUnitDelta decimal.Decimal, dir Direction, perPackage decimal.Decimal) error {
	var newTotal decimal.Decimal
	switch dir {
	case Add:
		newTotal = ing.TotalContentStock.Add(baseUnitDelta)
	case Subtract:
		newTotal = ing.TotalContentStock.Sub(baseUnitDelta)
		if newTotal.IsNegative() {
			return &domain.InsufficientStockError{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Required:       baseUnitDelta,
				Available:      ing.TotalContentStock,
			}
		}
	default:
		return domain.ErrInvalidInput
	}

	ing.TotalContentStock = newTotal
	ing.PackageStock = DerivePackageStock(newTotal, perPackage)
	return nil
}

// DerivePackageStock calcula el conteo de paquetes enteros a partir del total
// en unidad base. Contenido por paquete cero -> cero paquetes.
func DerivePackageStock(totalContent, perPackage decimal.Decimal) int64 {
	if perPackage.IsZero() {
		return 0
	}
	return totalContent.Div(perPackage).Floor().IntPart()
}
