package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock de ingredientes.
const (
	MovementTypeIN  = "IN"  // entrada: restauración por edición/borrado, entrega de proveedor, corrección
	MovementTypeOUT = "OUT" // salida: consumo por venta o merma
)

// StockMovement es el rastro de auditoría de cada ajuste del libro de stock.
// Quantity va en unidad base: positiva para IN, negativa para OUT.
type StockMovement struct {
	ID           string
	IngredientID string
	Type         string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal // costo por unidad base al momento del movimiento
	Reference    string          // id de venta, merma o ajuste manual
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string // StaffID
}
