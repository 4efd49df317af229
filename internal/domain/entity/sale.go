package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta de un producto terminado. COGS es el costo de
// ingredientes calculado al momento de la venta; nunca se recalcula después.
type Sale struct {
	ID                string
	FinishedProductID string
	SizeVariant       string
	Quantity          int64
	TotalAmount       decimal.Decimal // ingreso = precio unitario * cantidad
	COGS              decimal.Decimal // costo total de ingredientes
	SoldAt            time.Time
	StaffID           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CostBreakdownLine detalle inmutable de lo consumido por una venta y su costo
// al momento de venderse, independiente de cambios de precio posteriores.
type CostBreakdownLine struct {
	SaleID           string
	IngredientID     string
	QuantityConsumed decimal.Decimal // en unidad base
	CostAtSale       decimal.Decimal
}
