package pos

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/inventory"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/domain/unit"
	"github.com/shopspring/decimal"
)

// Ledger aplica ajustes atómicos sobre el stock de un ingrediente y deja el
// movimiento de auditoría. Opera siempre sobre repositorios atados a la
// transacción en curso y sobre filas ya bloqueadas con GetForUpdate.
type Ledger struct {
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
}

// NewLedger construye el libro de stock para la transacción en curso.
func NewLedger(ingredientRepo repository.IngredientRepository, movementRepo repository.StockMovementRepository) *Ledger {
	return &Ledger{ingredientRepo: ingredientRepo, movementRepo: movementRepo}
}

// Adjust aplica el delta en unidad base, recalcula el stock de paquetes
// derivado, persiste ambos campos juntos y registra el movimiento.
// reference es el id de la venta, merma o ajuste manual que origina el cambio.
func (l *Ledger) Adjust(ing *entity.Ingredient, baseUnitDelta decimal.Decimal, dir inventory.Direction, reference, notes, staffID string, now time.Time) error {
	unitCost := costing.CostPerBaseUnit(ing)

	perPackage := unit.ContentPerPackage(ing.PackageContent)
	if err := inventory.ApplyAdjustment(ing, baseUnitDelta, dir, perPackage); err != nil {
		return err
	}
	ing.UpdatedAt = now
	if err := l.ingredientRepo.UpdateStock(ing); err != nil {
		return err
	}

	movType := entity.MovementTypeIN
	quantity := baseUnitDelta
	if dir == inventory.Subtract {
		movType = entity.MovementTypeOUT
		quantity = baseUnitDelta.Neg()
	}
	return l.movementRepo.Create(&entity.StockMovement{
		ID:           uuid.New().String(),
		IngredientID: ing.ID,
		Type:         movType,
		Quantity:     quantity,
		UnitCost:     unitCost,
		Reference:    reference,
		Notes:        notes,
		CreatedAt:    now,
		CreatedBy:    staffID,
	})
}

// lockIngredients bloquea las filas de los ingredientes indicados en orden
// ascendente de id (orden determinista para evitar deadlocks entre
// transacciones con conjuntos de ingredientes solapados).
func lockIngredients(ingredientRepo repository.IngredientRepository, ids []string) (map[string]*entity.Ingredient, error) {
	unique := make(map[string]struct{}, len(ids))
	ordered := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, seen := unique[id]; seen {
			continue
		}
		unique[id] = struct{}{}
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	ingredients := make(map[string]*entity.Ingredient, len(ordered))
	for _, id := range ordered {
		ing, err := ingredientRepo.GetForUpdate(id)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		ingredients[id] = ing
	}
	return ingredients, nil
}

// ingredientIDs extrae los ids de ingrediente de una o más listas de líneas.
func ingredientIDs(lineSets ...[]*entity.RecipeLine) []string {
	var ids []string
	for _, lines := range lineSets {
		for _, line := range lines {
			ids = append(ids, line.IngredientID)
		}
	}
	return ids
}
