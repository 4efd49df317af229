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

// SaleUseCase coordina el ciclo de vida de una venta (crear, editar, borrar)
// como unidad atómica: bloquear filas de ingredientes en orden determinista,
// chequear disponibilidad, costear, descontar/restaurar stock y persistir la
// venta con su detalle de costos, todo con Commit o Rollback completo.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository // atado al pool, solo lecturas
	log      *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, log: log}
}

// CreateSale registra una venta: resuelve receta, valida stock, calcula COGS y
// monto, persiste venta + detalle y descuenta cada ingrediente bajo bloqueo.
func (uc *SaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.SizeVariant == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:                uuid.New().String(),
		FinishedProductID: in.ProductID,
		SizeVariant:       in.SizeVariant,
		Quantity:          in.Quantity,
		SoldAt:            now,
		StaffID:           in.StaffID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		menuRepo repository.MenuRepository,
		saleRepo repository.SaleRepository,
		_ repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		item, err := menuRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		lines, err := recipeRepo.ListByProductAndSize(in.ProductID, in.SizeVariant)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrNoRecipe
		}

		ingredients, err := lockIngredients(ingredientRepo, ingredientIDs(lines))
		if err != nil {
			return err
		}
		ledger := NewLedger(ingredientRepo, movementRepo)
		return uc.applySaleLocked(menuRepo, saleRepo, ledger, sale, lines, ingredients, now, false)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("product_id", in.ProductID).
		Str("size", in.SizeVariant).
		Int64("quantity", in.Quantity).
		Msg("venta registrada")
	return &dto.SaleResponse{SaleID: sale.ID, TotalAmount: sale.TotalAmount, COGS: sale.COGS}, nil
}

// EditSale reemplaza los parámetros de una venta como creación compensatoria:
// restaura por completo el stock de la receta original (como si la venta nunca
// hubiera ocurrido) y vuelve a aplicar la venta con los nuevos valores, todo
// en una sola transacción. La corrección viene de restaurar todo y reaplicar
// todo; no se hace diff ingrediente por ingrediente.
func (uc *SaleUseCase) EditSale(ctx context.Context, saleID string, in dto.EditSaleRequest) (*dto.SaleResponse, error) {
	if saleID == "" || in.ProductID == "" || in.SizeVariant == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.SaleResponse

	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		menuRepo repository.MenuRepository,
		saleRepo repository.SaleRepository,
		_ repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		origLines, err := recipeRepo.ListByProductAndSize(sale.FinishedProductID, sale.SizeVariant)
		if err != nil {
			return err
		}
		newLines, err := recipeRepo.ListByProductAndSize(in.ProductID, in.SizeVariant)
		if err != nil {
			return err
		}
		if len(newLines) == 0 {
			return domain.ErrNoRecipe
		}

		item, err := menuRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		// Bloquear de una vez la unión de ingredientes originales y nuevos,
		// en orden ascendente de id.
		ingredients, err := lockIngredients(ingredientRepo, ingredientIDs(origLines, newLines))
		if err != nil {
			return err
		}
		ledger := NewLedger(ingredientRepo, movementRepo)

		// Restauración completa de la receta original.
		origQty := decimal.NewFromInt(sale.Quantity)
		for _, line := range origLines {
			ing := ingredients[line.IngredientID]
			if err := ledger.Adjust(ing, line.AmountPerUnit.Mul(origQty), inventory.Add, sale.ID, "restauración por edición de venta", in.StaffID, now); err != nil {
				return err
			}
		}

		// Reaplicar con los nuevos parámetros sobre la misma fila de venta.
		sale.FinishedProductID = in.ProductID
		sale.SizeVariant = in.SizeVariant
		sale.Quantity = in.Quantity
		sale.StaffID = in.StaffID
		if err := uc.applySaleLocked(menuRepo, saleRepo, ledger, sale, newLines, ingredients, now, true); err != nil {
			return err
		}
		resp = &dto.SaleResponse{SaleID: sale.ID, TotalAmount: sale.TotalAmount, COGS: sale.COGS}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("sale_id", saleID).Msg("venta editada")
	return resp, nil
}

// DeleteSale restaura el stock de la receta original y elimina la venta con su
// detalle de costos (cascada), en una sola transacción.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, saleID, staffID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		_ repository.MenuRepository,
		saleRepo repository.SaleRepository,
		_ repository.WasteRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		lines, err := recipeRepo.ListByProductAndSize(sale.FinishedProductID, sale.SizeVariant)
		if err != nil {
			return err
		}
		ingredients, err := lockIngredients(ingredientRepo, ingredientIDs(lines))
		if err != nil {
			return err
		}

		ledger := NewLedger(ingredientRepo, movementRepo)
		qty := decimal.NewFromInt(sale.Quantity)
		for _, line := range lines {
			ing := ingredients[line.IngredientID]
			if err := ledger.Adjust(ing, line.AmountPerUnit.Mul(qty), inventory.Add, sale.ID, "restauración por borrado de venta", staffID, now); err != nil {
				return err
			}
		}
		return saleRepo.Delete(sale.ID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("sale_id", saleID).Msg("venta eliminada")
	return nil
}

// GetSale devuelve una venta con su detalle de costos (para la UI de gestión
// de registros; solo lectura, sin transacción).
func (uc *SaleUseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.ListBreakdownLines(saleID)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleDetailResponse{
		SaleID:      sale.ID,
		ProductID:   sale.FinishedProductID,
		SizeVariant: sale.SizeVariant,
		Quantity:    sale.Quantity,
		TotalAmount: sale.TotalAmount,
		COGS:        sale.COGS,
		SoldAt:      sale.SoldAt,
		StaffID:     sale.StaffID,
	}
	for _, line := range lines {
		out.Breakdown = append(out.Breakdown, dto.BreakdownLineDTO{
			IngredientID:     line.IngredientID,
			QuantityConsumed: line.QuantityConsumed,
			CostAtSale:       line.CostAtSale,
		})
	}
	return out, nil
}

// applySaleLocked ejecuta los pasos 2-6 de la creación de venta con las filas
// de ingredientes ya bloqueadas: disponibilidad, costeo, precio, persistencia
// y descuento de stock.
func (uc *SaleUseCase) applySaleLocked(
	menuRepo repository.MenuRepository,
	saleRepo repository.SaleRepository,
	ledger *Ledger,
	sale *entity.Sale,
	lines []*entity.RecipeLine,
	ingredients map[string]*entity.Ingredient,
	now time.Time,
	isEdit bool,
) error {
	if err := inventory.CheckAvailability(lines, ingredients, sale.Quantity); err != nil {
		return err
	}

	breakdown, cogs := costing.Breakdown(lines, ingredients, sale.Quantity)

	price, err := menuRepo.GetPrice(sale.FinishedProductID, sale.SizeVariant)
	if err != nil {
		return err
	}
	if price == nil {
		return domain.ErrPriceNotConfigured
	}
	sale.TotalAmount = price.UnitPrice.Mul(decimal.NewFromInt(sale.Quantity))
	sale.COGS = cogs
	sale.UpdatedAt = now

	if isEdit {
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		if err := saleRepo.DeleteBreakdownLines(sale.ID); err != nil {
			return err
		}
	} else {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
	}

	breakdownLines := make([]*entity.CostBreakdownLine, 0, len(breakdown))
	for _, b := range breakdown {
		breakdownLines = append(breakdownLines, &entity.CostBreakdownLine{
			SaleID:           sale.ID,
			IngredientID:     b.IngredientID,
			QuantityConsumed: b.QuantityConsumed,
			CostAtSale:       b.Cost,
		})
	}
	if err := saleRepo.CreateBreakdownLines(breakdownLines); err != nil {
		return err
	}

	qty := decimal.NewFromInt(sale.Quantity)
	for _, line := range lines {
		ing := ingredients[line.IngredientID]
		if err := ledger.Adjust(ing, line.AmountPerUnit.Mul(qty), inventory.Subtract, sale.ID, "consumo por venta", sale.StaffID, now); err != nil {
			return err
		}
	}
	return nil
}
