package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/pos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC         *pos.SaleUseCase
	WasteUC        *pos.WasteUseCase
	StockAdjustUC  *pos.StockAdjustUseCase
	InventoryQuery *pos.InventoryQueryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Edit)
	sales.Delete("/:id", saleHandler.Delete)

	// Mermas
	waste := api.Group("/waste")
	wasteHandler := NewWasteHandler(deps.WasteUC)
	waste.Post("/", wasteHandler.Create)
	waste.Get("/:id", wasteHandler.GetByID)
	waste.Put("/:id", wasteHandler.Edit)
	waste.Delete("/:id", wasteHandler.Delete)

	// Inventario
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockAdjustUC, deps.InventoryQuery)
	invGroup.Post("/adjustments", inventoryHandler.AddStock)
	invGroup.Get("/ingredients", inventoryHandler.ListIngredients)
	invGroup.Get("/ingredients/:id/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements", inventoryHandler.MovementsByReference)
}
