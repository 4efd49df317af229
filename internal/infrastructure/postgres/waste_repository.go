package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ repository.WasteRepository = (*WasteRepo)(nil)

// WasteRepo implementación de WasteRepository sobre PostgreSQL (usable con pool o tx).
type WasteRepo struct {
	q Querier
}

// NewWasteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWasteRepository(q Querier) *WasteRepo {
	return &WasteRepo{q: q}
}

// Create inserta el registro de merma.
func (r *WasteRepo) Create(waste *entity.WasteLog) error {
	query := `
		INSERT INTO waste_logs (id, product_id, item_type, size_variant, quantity, reason, waste_cost, wasted_at, staff_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		waste.ID, waste.ProductID, waste.ItemType, waste.SizeVariant,
		waste.Quantity, waste.Reason, waste.WasteCost, waste.WastedAt, waste.StaffID,
	)
	if err != nil {
		return fmt.Errorf("create waste log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de merma; nil sin error si no existe.
func (r *WasteRepo) GetByID(id string) (*entity.WasteLog, error) {
	query := `
		SELECT id, product_id, item_type, size_variant, quantity, reason, waste_cost, wasted_at, staff_id, created_at, updated_at
		FROM waste_logs WHERE id = $1`
	var waste entity.WasteLog
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&waste.ID, &waste.ProductID, &waste.ItemType, &waste.SizeVariant,
		&waste.Quantity, &waste.Reason, &waste.WasteCost, &waste.WastedAt,
		&waste.StaffID, &waste.CreatedAt, &waste.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get waste log: %w", err)
	}
	return &waste, nil
}

// Update reescribe los campos mutables del registro conservando su id.
func (r *WasteRepo) Update(waste *entity.WasteLog) error {
	query := `
		UPDATE waste_logs
		SET product_id = $2, item_type = $3, size_variant = $4, quantity = $5,
		    reason = $6, waste_cost = $7, staff_id = $8, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		waste.ID, waste.ProductID, waste.ItemType, waste.SizeVariant,
		waste.Quantity, waste.Reason, waste.WasteCost, waste.StaffID,
	)
	if err != nil {
		return fmt.Errorf("update waste log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update waste log: fila %s inexistente", waste.ID)
	}
	return nil
}

// Delete elimina el registro de merma.
func (r *WasteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM waste_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete waste log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete waste log: fila %s inexistente", id)
	}
	return nil
}
