package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// IngredientRepository define el puerto de persistencia para ingredientes.
// Las filas de ingrediente son el único recurso compartido entre operaciones
// concurrentes: toda secuencia leer-chequear-mutar debe usar GetForUpdate
// dentro de una transacción.
type IngredientRepository interface {
	GetByID(id string) (*entity.Ingredient, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) hasta commit/rollback.
	GetForUpdate(id string) (*entity.Ingredient, error)
	// UpdateStock persiste TotalContentStock y PackageStock juntos.
	UpdateStock(ing *entity.Ingredient) error
	ListByCategory(category string, limit, offset int) ([]*entity.Ingredient, error)
}
