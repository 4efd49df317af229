package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y su detalle de
// costos. Las filas de venta se mutan solo a través del motor (cada mutación
// lleva un ajuste de stock compensatorio).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// GetByID devuelve nil sin error si la venta no existe.
	GetByID(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	// Delete elimina la venta; el detalle de costos cae en cascada.
	Delete(id string) error
	CreateBreakdownLines(lines []*entity.CostBreakdownLine) error
	DeleteBreakdownLines(saleID string) error
	ListBreakdownLines(saleID string) ([]*entity.CostBreakdownLine, error)
}
