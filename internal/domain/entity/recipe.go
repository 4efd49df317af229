package entity

import "github.com/shopspring/decimal"

// RecipeLine indica cuánto de un ingrediente consume una unidad vendida de un
// producto terminado en un tamaño dado. AmountPerUnit ya está en la unidad base
// del ingrediente (gramos, mililitros o piezas).
type RecipeLine struct {
	FinishedProductID string
	SizeVariant       string
	IngredientID      string
	AmountPerUnit     decimal.Decimal
	Unit              string
}
