package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un insumo o material de empaque en stock.
// TotalContentStock (en unidad base: gramos, mililitros o piezas) es la fuente
// de verdad; PackageStock siempre se recalcula como floor(total / contenido por paquete).
type Ingredient struct {
	ID                string
	Name              string
	Category          string
	PackagePrice      decimal.Decimal // costo de un paquete tal como se compra
	PackageContent    string          // descriptor "valor unidad", ej. "1 KG", "500 ML"
	PackageStock      int64           // derivado, nunca autoritativo
	TotalContentStock decimal.Decimal // unidad base, autoritativo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
