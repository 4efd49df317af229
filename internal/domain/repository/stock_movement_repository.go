package repository

import (
	"time"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el rastro de
// auditoría de ajustes de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByIngredient(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByReference(reference string) ([]*entity.StockMovement, error)
}
