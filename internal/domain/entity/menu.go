package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un producto terminado vendible (gestionado fuera del motor).
type MenuItem struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItemPrice precio de venta de un producto por variante de tamaño.
type MenuItemPrice struct {
	ProductID   string
	SizeVariant string
	UnitPrice   decimal.Decimal
}
