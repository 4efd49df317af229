package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, finished_product_id, size_variant, quantity, total_amount, cogs, sold_at, staff_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.FinishedProductID, sale.SizeVariant, sale.Quantity,
		sale.TotalAmount, sale.COGS, sale.SoldAt, sale.StaffID,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta; nil sin error si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, finished_product_id, size_variant, quantity, total_amount, cogs, sold_at, staff_id, created_at, updated_at
		FROM sales WHERE id = $1`
	var sale entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&sale.ID, &sale.FinishedProductID, &sale.SizeVariant, &sale.Quantity,
		&sale.TotalAmount, &sale.COGS, &sale.SoldAt, &sale.StaffID,
		&sale.CreatedAt, &sale.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &sale, nil
}

// Update reescribe los campos mutables de la venta conservando su id.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET finished_product_id = $2, size_variant = $3, quantity = $4,
		    total_amount = $5, cogs = $6, staff_id = $7, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.FinishedProductID, sale.SizeVariant, sale.Quantity,
		sale.TotalAmount, sale.COGS, sale.StaffID,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update sale: fila %s inexistente", sale.ID)
	}
	return nil
}

// Delete elimina la venta; el detalle de costos cae por FK ON DELETE CASCADE.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete sale: fila %s inexistente", id)
	}
	return nil
}

// CreateBreakdownLines inserta el detalle de costos de la venta.
func (r *SaleRepo) CreateBreakdownLines(lines []*entity.CostBreakdownLine) error {
	query := `
		INSERT INTO sale_cost_breakdown (sale_id, ingredient_id, quantity_consumed, cost_at_sale)
		VALUES ($1, $2, $3, $4)`
	for _, line := range lines {
		_, err := r.q.Exec(context.Background(), query,
			line.SaleID, line.IngredientID, line.QuantityConsumed, line.CostAtSale,
		)
		if err != nil {
			return fmt.Errorf("create breakdown line: %w", err)
		}
	}
	return nil
}

// DeleteBreakdownLines borra el detalle actual de una venta (previo a reemplazarlo).
func (r *SaleRepo) DeleteBreakdownLines(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_cost_breakdown WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete breakdown lines: %w", err)
	}
	return nil
}

// ListBreakdownLines devuelve el detalle de costos de una venta.
func (r *SaleRepo) ListBreakdownLines(saleID string) ([]*entity.CostBreakdownLine, error) {
	query := `
		SELECT sale_id, ingredient_id, quantity_consumed, cost_at_sale
		FROM sale_cost_breakdown WHERE sale_id = $1
		ORDER BY ingredient_id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list breakdown lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.CostBreakdownLine
	for rows.Next() {
		var line entity.CostBreakdownLine
		if err := rows.Scan(&line.SaleID, &line.IngredientID, &line.QuantityConsumed, &line.CostAtSale); err != nil {
			return nil, fmt.Errorf("scan breakdown line: %w", err)
		}
		out = append(out, &line)
	}
	return out, rows.Err()
}
