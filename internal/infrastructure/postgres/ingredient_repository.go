package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, category, package_price, package_content, package_stock, total_content_stock, created_at, updated_at`

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL
// (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.Category, &ing.PackagePrice, &ing.PackageContent,
		&ing.PackageStock, &ing.TotalContentStock, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ing, nil
}

// GetByID obtiene un ingrediente; nil sin error si no existe.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	ing, err := scanIngredient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return ing, nil
}

// GetForUpdate obtiene el ingrediente y bloquea la fila (SELECT FOR UPDATE)
// hasta el commit/rollback de la transacción en curso.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	ing, err := scanIngredient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get ingredient for update: %w", err)
	}
	return ing, nil
}

// UpdateStock persiste juntos el total en unidad base y el stock de paquetes
// derivado. Siempre se escriben los dos campos: el derivado nunca se actualiza solo.
func (r *IngredientRepo) UpdateStock(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET total_content_stock = $2, package_stock = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, ing.ID, ing.TotalContentStock, ing.PackageStock)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update ingredient stock: fila %s inexistente", ing.ID)
	}
	return nil
}

// ListByCategory lista ingredientes por categoría (vacía = todas).
func (r *IngredientRepo) ListByCategory(category string, limit, offset int) ([]*entity.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE ($1 = '' OR category = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.Name, &ing.Category, &ing.PackagePrice, &ing.PackageContent,
			&ing.PackageStock, &ing.TotalContentStock, &ing.CreatedAt, &ing.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, &ing)
	}
	return out, rows.Err()
}
