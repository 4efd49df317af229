package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/inventory"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// StockAdjustUseCase expone la primitiva de entrada de stock para la gestión
// de inventario (entregas de proveedor y correcciones manuales). Usa el mismo
// libro de stock que ventas y mermas, sin pasar por lógica de recetas.
type StockAdjustUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewStockAdjustUseCase construye el caso de uso.
func NewStockAdjustUseCase(txRunner TxRunner, log *logger.Logger) *StockAdjustUseCase {
	return &StockAdjustUseCase{txRunner: txRunner, log: log}
}

// AddStock suma cantidad en unidad base al ingrediente bajo bloqueo de fila y
// deja el movimiento de auditoría. Add no tiene precondición de stock.
func (uc *StockAdjustUseCase) AddStock(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if in.IngredientID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	adjustmentID := uuid.New().String()
	var resp *dto.AdjustStockResponse

	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		_ repository.RecipeRepository,
		_ repository.MenuRepository,
		_ repository.SaleRepository,
		_ repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		ingredients, err := lockIngredients(ingredientRepo, []string{in.IngredientID})
		if err != nil {
			return err
		}
		ing := ingredients[in.IngredientID]

		ledger := NewLedger(ingredientRepo, movementRepo)
		if err := ledger.Adjust(ing, in.Quantity, inventory.Add, adjustmentID, in.Notes, in.StaffID, now); err != nil {
			return err
		}
		resp = &dto.AdjustStockResponse{
			IngredientID:      ing.ID,
			TotalContentStock: ing.TotalContentStock,
			PackageStock:      ing.PackageStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("ingredient_id", in.IngredientID).
		Str("adjustment_id", adjustmentID).
		Msg("entrada de stock registrada")
	return resp, nil
}
