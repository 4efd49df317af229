package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Costeo-api/internal/application/pos"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// Ensure TxRunner implements pos.TxRunner.
var _ pos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los
// bloqueos FOR UPDATE tomados por los repositorios atados a la tx se liberan
// en el Commit o Rollback, nunca antes.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los fallos de Begin/Commit y los errores de BD
// reintentables se reportan como fallo transitorio de almacenamiento; tras un
// fallo transitorio el caller puede reintentar la operación completa porque
// nada parcial quedó persistido.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	menuRepo repository.MenuRepository,
	saleRepo repository.SaleRepository,
	wasteRepo repository.WasteRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %s", domain.ErrTransientStorage, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewIngredientRepository(tx),
		NewRecipeRepository(tx),
		NewMenuRepository(tx),
		NewSaleRepository(tx),
		NewWasteRepository(tx),
		NewStockMovementRepository(tx),
	)
	if err != nil {
		if isTransient(err) {
			return fmt.Errorf("%w: %s", domain.ErrTransientStorage, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %s", domain.ErrTransientStorage, err)
	}
	return nil
}
