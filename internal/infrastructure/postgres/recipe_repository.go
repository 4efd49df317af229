package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ListByProductAndSize devuelve las líneas de la receta para el par exacto
// (producto, tamaño), en orden estable. Sin filas devuelve lista vacía, nunca error.
func (r *RecipeRepo) ListByProductAndSize(finishedProductID, sizeVariant string) ([]*entity.RecipeLine, error) {
	query := `
		SELECT finished_product_id, size_variant, ingredient_id, amount_per_unit, unit
		FROM recipe_lines
		WHERE finished_product_id = $1 AND size_variant = $2
		ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, finishedProductID, sizeVariant)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.RecipeLine
	for rows.Next() {
		var line entity.RecipeLine
		if err := rows.Scan(&line.FinishedProductID, &line.SizeVariant, &line.IngredientID, &line.AmountPerUnit, &line.Unit); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out = append(out, &line)
	}
	return out, rows.Err()
}
