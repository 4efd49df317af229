package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem desperdiciado.
const (
	WasteItemMenu       = "MENU"       // producto terminado: consume su receta, costo = precio de venta
	WasteItemIngredient = "INGREDIENT" // insumo crudo: descuenta su propio stock, costo = costo por unidad base
)

// WasteLog registra una merma. Para producto terminado SizeVariant es
// obligatorio y Quantity son unidades; para insumo crudo SizeVariant va vacío
// y Quantity está en la unidad base del ingrediente.
type WasteLog struct {
	ID          string
	ProductID   string
	ItemType    string // WasteItemMenu o WasteItemIngredient
	SizeVariant string
	Quantity    decimal.Decimal
	Reason      string
	WasteCost   decimal.Decimal
	WastedAt    time.Time
	StaffID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
