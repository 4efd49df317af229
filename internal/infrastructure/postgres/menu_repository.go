package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo lectura del catálogo de productos terminados (usable con pool o tx).
// El catálogo lo escribe la gestión de menú, fuera del motor.
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// GetByID obtiene un producto del menú; nil sin error si no existe.
func (r *MenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `SELECT id, name, category, created_at, updated_at FROM menu_items WHERE id = $1`
	var item entity.MenuItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.Name, &item.Category, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

// GetPrice obtiene el precio de venta para un tamaño; nil sin error si no está
// configurado (el caller lo convierte en error de precio no configurado).
func (r *MenuRepo) GetPrice(productID, sizeVariant string) (*entity.MenuItemPrice, error) {
	query := `
		SELECT product_id, size_variant, unit_price
		FROM menu_item_prices WHERE product_id = $1 AND size_variant = $2`
	var price entity.MenuItemPrice
	err := r.q.QueryRow(context.Background(), query, productID, sizeVariant).Scan(
		&price.ProductID, &price.SizeVariant, &price.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item price: %w", err)
	}
	return &price, nil
}
