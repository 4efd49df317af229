package costing

import (
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/unit"
	"github.com/shopspring/decimal"
)

// Cálculo de costo de venta (COGS) a partir del precio de paquete vigente y el
// contenido del paquete en unidad base.

// CostPerBaseUnit devuelve el costo de una unidad base del ingrediente:
// precio del paquete / contenido del paquete en unidad base.
// Contenido cero -> costo cero (ingrediente degenerado, no aporta al COGS).
func CostPerBaseUnit(ing *entity.Ingredient) decimal.Decimal {
	perPackage := unit.ContentPerPackage(ing.PackageContent)
	if perPackage.IsZero() {
		return decimal.Zero
	}
	return ing.PackagePrice.Div(perPackage)
}

// LineCost costo de una línea de receta para una cantidad vendida:
// cantidad por unidad * unidades * costo por unidad base.
func LineCost(ing *entity.Ingredient, amountPerUnit decimal.Decimal, quantity int64) decimal.Decimal {
	return amountPerUnit.Mul(decimal.NewFromInt(quantity)).Mul(CostPerBaseUnit(ing))
}

// BreakdownLine consumo y costo de un ingrediente dentro de una transacción.
type BreakdownLine struct {
	IngredientID     string
	QuantityConsumed decimal.Decimal // en unidad base
	Cost             decimal.Decimal
}

// Breakdown calcula el detalle por ingrediente y el COGS total de una receta
// para la cantidad vendida. ingredients debe contener todos los IDs de las líneas.
func Breakdown(lines []*entity.RecipeLine, ingredients map[string]*entity.Ingredient, quantity int64) ([]BreakdownLine, decimal.Decimal) {
	qty := decimal.NewFromInt(quantity)
	breakdown := make([]BreakdownLine, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		ing := ingredients[line.IngredientID]
		if ing == nil {
			continue
		}
		cost := LineCost(ing, line.AmountPerUnit, quantity)
		breakdown = append(breakdown, BreakdownLine{
			IngredientID:     line.IngredientID,
			QuantityConsumed: line.AmountPerUnit.Mul(qty),
			Cost:             cost,
		})
		total = total.Add(cost)
	}
	return breakdown, total
}

// MenuWasteCost costo de merma de producto terminado: precio de venta del
// tamaño * cantidad. Modela costo de oportunidad, no costo de ingredientes
// (asimetría deliberada frente al COGS de ventas).
func MenuWasteCost(unitPrice decimal.Decimal, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity)
}

// IngredientWasteCost costo de merma de insumo crudo: cantidad en unidad base
// * costo por unidad base, la misma fórmula que una línea de receta.
func IngredientWasteCost(ing *entity.Ingredient, quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(CostPerBaseUnit(ing))
}
