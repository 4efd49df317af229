package pos

import (
	"context"
	"time"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// InventoryQueryUseCase lecturas de inventario y del rastro de auditoría para
// la UI de gestión. Solo lectura: opera con repositorios atados al pool, sin
// transacción ni bloqueos.
type InventoryQueryUseCase struct {
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
}

// NewInventoryQueryUseCase construye el caso de uso.
func NewInventoryQueryUseCase(ingredientRepo repository.IngredientRepository, movementRepo repository.StockMovementRepository) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{ingredientRepo: ingredientRepo, movementRepo: movementRepo}
}

// ListIngredients lista ingredientes por categoría (vacía = todas), paginado.
func (uc *InventoryQueryUseCase) ListIngredients(ctx context.Context, category string, page dto.PageRequest) ([]dto.IngredientResponse, error) {
	page.DefaultPage()
	ingredients, err := uc.ingredientRepo.ListByCategory(category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, dto.IngredientResponse{
			ID:                ing.ID,
			Name:              ing.Name,
			Category:          ing.Category,
			PackagePrice:      ing.PackagePrice,
			PackageContent:    ing.PackageContent,
			PackageStock:      ing.PackageStock,
			TotalContentStock: ing.TotalContentStock,
		})
	}
	return out, nil
}

// ListMovements lista los movimientos de un ingrediente, opcionalmente
// acotados por rango de fechas, paginado.
func (uc *InventoryQueryUseCase) ListMovements(ctx context.Context, ingredientID string, from, to *time.Time, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	if ingredientID == "" {
		return nil, domain.ErrInvalidInput
	}
	ing, err := uc.ingredientRepo.GetByID(ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	movements, err := uc.movementRepo.ListByIngredient(ingredientID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return movementDTOs(movements), nil
}

// ListMovementsByReference lista los movimientos generados por una venta,
// merma o ajuste manual (todas las patas de una compensación comparten referencia).
func (uc *InventoryQueryUseCase) ListMovementsByReference(ctx context.Context, reference string) ([]dto.StockMovementResponse, error) {
	if reference == "" {
		return nil, domain.ErrInvalidInput
	}
	movements, err := uc.movementRepo.ListByReference(reference)
	if err != nil {
		return nil, err
	}
	return movementDTOs(movements), nil
}

func movementDTOs(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:           m.ID,
			IngredientID: m.IngredientID,
			Type:         m.Type,
			Quantity:     m.Quantity,
			UnitCost:     m.UnitCost,
			Reference:    m.Reference,
			Notes:        m.Notes,
			CreatedAt:    m.CreatedAt,
			CreatedBy:    m.CreatedBy,
		})
	}
	return out
}
