package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/inventory"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// WasteUseCase coordina registros de merma como unidades atómicas, con la
// misma disciplina de bloqueo y restauración que las ventas. Una merma puede
// ser de producto terminado (consume su receta, costo = precio de venta del
// tamaño) o de insumo crudo (descuenta su propio stock, costo = costo por
// unidad base).
type WasteUseCase struct {
	txRunner  TxRunner
	wasteRepo repository.WasteRepository // atado al pool, solo lecturas
	log       *logger.Logger
}

// NewWasteUseCase construye el caso de uso.
func NewWasteUseCase(txRunner TxRunner, wasteRepo repository.WasteRepository, log *logger.Logger) *WasteUseCase {
	return &WasteUseCase{txRunner: txRunner, wasteRepo: wasteRepo, log: log}
}

// CreateWaste registra una merma, clasificando el ítem por su id: si existe en
// el menú es producto terminado; si existe como ingrediente es insumo crudo;
// si no existe en ninguno, el tipo es inválido.
func (uc *WasteUseCase) CreateWaste(ctx context.Context, in dto.CreateWasteRequest) (*dto.WasteResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	waste := &entity.WasteLog{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		SizeVariant: in.SizeVariant,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		WastedAt:    now,
		StaffID:     in.StaffID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		menuRepo repository.MenuRepository,
		_ repository.SaleRepository,
		wasteRepo repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		itemType, err := classifyWasteItem(menuRepo, ingredientRepo, in.ProductID, in.SizeVariant)
		if err != nil {
			return err
		}
		waste.ItemType = itemType

		ledger := NewLedger(ingredientRepo, movementRepo)
		if err := uc.applyWaste(ingredientRepo, recipeRepo, menuRepo, ledger, waste, nil, now); err != nil {
			return err
		}
		return wasteRepo.Create(waste)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("waste_id", waste.ID).
		Str("product_id", in.ProductID).
		Str("item_type", waste.ItemType).
		Msg("merma registrada")
	return &dto.WasteResponse{WasteID: waste.ID, ItemType: waste.ItemType, WasteCost: waste.WasteCost}, nil
}

// EditWaste restaura por completo el stock de la merma original y vuelve a
// aplicar la merma con los nuevos parámetros sobre la misma fila, en una sola
// transacción (mismo patrón compensatorio que EditSale).
func (uc *WasteUseCase) EditWaste(ctx context.Context, wasteID string, in dto.EditWasteRequest) (*dto.WasteResponse, error) {
	if wasteID == "" || in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.WasteResponse

	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		menuRepo repository.MenuRepository,
		_ repository.SaleRepository,
		wasteRepo repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		waste, err := wasteRepo.GetByID(wasteID)
		if err != nil {
			return err
		}
		if waste == nil {
			return domain.ErrNotFound
		}

		newType, err := classifyWasteItem(menuRepo, ingredientRepo, in.ProductID, in.SizeVariant)
		if err != nil {
			return err
		}

		// Bloquear la unión de ingredientes tocados por la merma original y la
		// nueva antes de mutar nada.
		lockIDs, err := wasteLockIDs(recipeRepo, waste.ItemType, waste.ProductID, waste.SizeVariant)
		if err != nil {
			return err
		}
		newLockIDs, err := wasteLockIDs(recipeRepo, newType, in.ProductID, in.SizeVariant)
		if err != nil {
			return err
		}
		ingredients, err := lockIngredients(ingredientRepo, append(lockIDs, newLockIDs...))
		if err != nil {
			return err
		}
		ledger := NewLedger(ingredientRepo, movementRepo)

		if err := uc.restoreWaste(recipeRepo, ledger, waste, ingredients, in.StaffID, now); err != nil {
			return err
		}

		waste.ProductID = in.ProductID
		waste.ItemType = newType
		waste.SizeVariant = in.SizeVariant
		waste.Quantity = in.Quantity
		waste.Reason = in.Reason
		waste.StaffID = in.StaffID
		waste.UpdatedAt = now
		if err := uc.applyWaste(ingredientRepo, recipeRepo, menuRepo, ledger, waste, ingredients, now); err != nil {
			return err
		}
		if err := wasteRepo.Update(waste); err != nil {
			return err
		}
		resp = &dto.WasteResponse{WasteID: waste.ID, ItemType: waste.ItemType, WasteCost: waste.WasteCost}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("waste_id", wasteID).Msg("merma editada")
	return resp, nil
}

// DeleteWaste restaura el stock de la merma y elimina el registro.
func (uc *WasteUseCase) DeleteWaste(ctx context.Context, wasteID, staffID string) error {
	if wasteID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		_ repository.MenuRepository,
		_ repository.SaleRepository,
		wasteRepo repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		waste, err := wasteRepo.GetByID(wasteID)
		if err != nil {
			return err
		}
		if waste == nil {
			return domain.ErrNotFound
		}

		lockIDs, err := wasteLockIDs(recipeRepo, waste.ItemType, waste.ProductID, waste.SizeVariant)
		if err != nil {
			return err
		}
		ingredients, err := lockIngredients(ingredientRepo, lockIDs)
		if err != nil {
			return err
		}

		ledger := NewLedger(ingredientRepo, movementRepo)
		if err := uc.restoreWaste(recipeRepo, ledger, waste, ingredients, staffID, now); err != nil {
			return err
		}
		return wasteRepo.Delete(waste.ID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("waste_id", wasteID).Msg("merma eliminada")
	return nil
}

// GetWaste devuelve una merma (solo lectura, sin transacción).
func (uc *WasteUseCase) GetWaste(ctx context.Context, wasteID string) (*dto.WasteDetailResponse, error) {
	waste, err := uc.wasteRepo.GetByID(wasteID)
	if err != nil {
		return nil, err
	}
	if waste == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.WasteDetailResponse{
		WasteID:     waste.ID,
		ProductID:   waste.ProductID,
		ItemType:    waste.ItemType,
		SizeVariant: waste.SizeVariant,
		Quantity:    waste.Quantity,
		Reason:      waste.Reason,
		WasteCost:   waste.WasteCost,
		WastedAt:    waste.WastedAt,
		StaffID:     waste.StaffID,
	}, nil
}

// classifyWasteItem decide si el id corresponde a producto terminado o insumo
// crudo. Tamaño presente en un insumo crudo, o id inexistente en ambos
// catálogos, es tipo de producto inválido.
func classifyWasteItem(menuRepo repository.MenuRepository, ingredientRepo repository.IngredientRepository, productID, sizeVariant string) (string, error) {
	item, err := menuRepo.GetByID(productID)
	if err != nil {
		return "", err
	}
	if item != nil {
		if sizeVariant == "" {
			return "", domain.ErrInvalidInput
		}
		return entity.WasteItemMenu, nil
	}

	ing, err := ingredientRepo.GetByID(productID)
	if err != nil {
		return "", err
	}
	if ing == nil {
		return "", domain.ErrInvalidProductType
	}
	if sizeVariant != "" {
		return "", domain.ErrInvalidProductType
	}
	return entity.WasteItemIngredient, nil
}

// wasteLockIDs devuelve los ids de ingrediente que una merma toca: las líneas
// de su receta para producto terminado, o el propio ingrediente para insumo crudo.
func wasteLockIDs(recipeRepo repository.RecipeRepository, itemType, productID, sizeVariant string) ([]string, error) {
	if itemType == entity.WasteItemIngredient {
		return []string{productID}, nil
	}
	lines, err := recipeRepo.ListByProductAndSize(productID, sizeVariant)
	if err != nil {
		return nil, err
	}
	return ingredientIDs(lines), nil
}

// applyWaste calcula el costo de la merma y descuenta el stock correspondiente.
// ingredients puede venir ya bloqueado (edición); nil bloquea aquí.
func (uc *WasteUseCase) applyWaste(
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	menuRepo repository.MenuRepository,
	ledger *Ledger,
	waste *entity.WasteLog,
	ingredients map[string]*entity.Ingredient,
	now time.Time,
) error {
	if waste.ItemType == entity.WasteItemIngredient {
		if ingredients == nil {
			var err error
			ingredients, err = lockIngredients(ingredientRepo, []string{waste.ProductID})
			if err != nil {
				return err
			}
		}
		ing := ingredients[waste.ProductID]
		if ing.TotalContentStock.LessThan(waste.Quantity) {
			return &domain.InsufficientStockError{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Required:       waste.Quantity,
				Available:      ing.TotalContentStock,
			}
		}
		waste.WasteCost = costing.IngredientWasteCost(ing, waste.Quantity)
		return ledger.Adjust(ing, waste.Quantity, inventory.Subtract, waste.ID, "merma de insumo", waste.StaffID, now)
	}

	// Producto terminado: la cantidad son unidades enteras.
	if !waste.Quantity.IsInteger() {
		return domain.ErrInvalidInput
	}
	units := waste.Quantity.IntPart()

	lines, err := recipeRepo.ListByProductAndSize(waste.ProductID, waste.SizeVariant)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return domain.ErrNoRecipe
	}
	if ingredients == nil {
		ingredients, err = lockIngredients(ingredientRepo, ingredientIDs(lines))
		if err != nil {
			return err
		}
	}
	if err := inventory.CheckAvailability(lines, ingredients, units); err != nil {
		return err
	}

	price, err := menuRepo.GetPrice(waste.ProductID, waste.SizeVariant)
	if err != nil {
		return err
	}
	if price == nil {
		return domain.ErrPriceNotConfigured
	}
	// Costo de oportunidad: precio de venta del tamaño, no costo de ingredientes.
	waste.WasteCost = costing.MenuWasteCost(price.UnitPrice, waste.Quantity)

	qty := decimal.NewFromInt(units)
	for _, line := range lines {
		ing := ingredients[line.IngredientID]
		if err := ledger.Adjust(ing, line.AmountPerUnit.Mul(qty), inventory.Subtract, waste.ID, "consumo por merma", waste.StaffID, now); err != nil {
			return err
		}
	}
	return nil
}

// restoreWaste devuelve al stock lo que la merma había descontado.
func (uc *WasteUseCase) restoreWaste(
	recipeRepo repository.RecipeRepository,
	ledger *Ledger,
	waste *entity.WasteLog,
	ingredients map[string]*entity.Ingredient,
	staffID string,
	now time.Time,
) error {
	if waste.ItemType == entity.WasteItemIngredient {
		ing := ingredients[waste.ProductID]
		if ing == nil {
			return domain.ErrNotFound
		}
		return ledger.Adjust(ing, waste.Quantity, inventory.Add, waste.ID, "restauración de merma", staffID, now)
	}

	lines, err := recipeRepo.ListByProductAndSize(waste.ProductID, waste.SizeVariant)
	if err != nil {
		return err
	}
	qty := decimal.NewFromInt(waste.Quantity.IntPart())
	for _, line := range lines {
		ing := ingredients[line.IngredientID]
		if ing == nil {
			return domain.ErrNotFound
		}
		if err := ledger.Adjust(ing, line.AmountPerUnit.Mul(qty), inventory.Add, waste.ID, "restauración de merma", staffID, now); err != nil {
			return err
		}
	}
	return nil
}
