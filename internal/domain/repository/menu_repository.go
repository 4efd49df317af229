package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// MenuRepository define el puerto de lectura del catálogo de productos
// terminados (los escribe la gestión de menú, fuera del motor).
type MenuRepository interface {
	// GetByID devuelve nil sin error si el producto no existe.
	GetByID(id string) (*entity.MenuItem, error)
	// GetPrice devuelve nil sin error si no hay precio para ese tamaño.
	GetPrice(productID, sizeVariant string) (*entity.MenuItemPrice, error)
}
