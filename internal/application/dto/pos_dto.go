package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registra una venta de producto terminado.
type CreateSaleRequest struct {
	ProductID   string `json:"product_id"`
	SizeVariant string `json:"size_variant"`
	Quantity    int64  `json:"quantity"`
	StaffID     string `json:"staff_id"`
}

// EditSaleRequest reemplaza los parámetros de una venta existente.
// El motor restaura el stock original y aplica los nuevos valores como una
// sola transacción.
type EditSaleRequest struct {
	ProductID   string `json:"product_id"`
	SizeVariant string `json:"size_variant"`
	Quantity    int64  `json:"quantity"`
	StaffID     string `json:"staff_id"`
}

// SaleResponse resultado de crear o editar una venta.
type SaleResponse struct {
	SaleID      string          `json:"sale_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	COGS        decimal.Decimal `json:"cogs"`
}

// SaleDetailResponse venta con su detalle de costos.
type SaleDetailResponse struct {
	SaleID      string              `json:"sale_id"`
	ProductID   string              `json:"product_id"`
	SizeVariant string              `json:"size_variant"`
	Quantity    int64               `json:"quantity"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	COGS        decimal.Decimal     `json:"cogs"`
	SoldAt      time.Time           `json:"sold_at"`
	StaffID     string              `json:"staff_id"`
	Breakdown   []BreakdownLineDTO  `json:"breakdown"`
}

// BreakdownLineDTO línea del detalle de costos de una venta.
type BreakdownLineDTO struct {
	IngredientID     string          `json:"ingredient_id"`
	QuantityConsumed decimal.Decimal `json:"quantity_consumed"`
	CostAtSale       decimal.Decimal `json:"cost_at_sale"`
}

// CreateWasteRequest registra una merma. ProductID puede ser un producto
// terminado (size_variant obligatorio, quantity en unidades) o un insumo crudo
// (size_variant vacío, quantity en unidad base).
type CreateWasteRequest struct {
	ProductID   string          `json:"product_id"`
	SizeVariant string          `json:"size_variant"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	StaffID     string          `json:"staff_id"`
}

// EditWasteRequest reemplaza los parámetros de una merma existente.
type EditWasteRequest struct {
	ProductID   string          `json:"product_id"`
	SizeVariant string          `json:"size_variant"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	StaffID     string          `json:"staff_id"`
}

// WasteResponse resultado de crear o editar una merma.
type WasteResponse struct {
	WasteID   string          `json:"waste_id"`
	ItemType  string          `json:"item_type"`
	WasteCost decimal.Decimal `json:"waste_cost"`
}

// WasteDetailResponse merma completa para la UI de gestión de registros.
type WasteDetailResponse struct {
	WasteID     string          `json:"waste_id"`
	ProductID   string          `json:"product_id"`
	ItemType    string          `json:"item_type"`
	SizeVariant string          `json:"size_variant,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	WasteCost   decimal.Decimal `json:"waste_cost"`
	WastedAt    time.Time       `json:"wasted_at"`
	StaffID     string          `json:"staff_id"`
}

// AdjustStockRequest entrada de stock fuera del flujo venta/merma
// (entrega de proveedor o corrección manual). Quantity en unidad base.
type AdjustStockRequest struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Notes        string          `json:"notes"`
	StaffID      string          `json:"staff_id"`
}

// AdjustStockResponse stock resultante tras el ajuste.
type AdjustStockResponse struct {
	IngredientID      string          `json:"ingredient_id"`
	TotalContentStock decimal.Decimal `json:"total_content_stock"`
	PackageStock      int64           `json:"package_stock"`
}

// IngredientResponse ingrediente con su stock en las dos vistas (total en
// unidad base autoritativo, paquetes derivado).
type IngredientResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	PackagePrice      decimal.Decimal `json:"package_price"`
	PackageContent    string          `json:"package_content"`
	PackageStock      int64           `json:"package_stock"`
	TotalContentStock decimal.Decimal `json:"total_content_stock"`
}

// StockMovementResponse movimiento del rastro de auditoría.
type StockMovementResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredient_id"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Reference    string          `json:"reference"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by"`
}
