package pos_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/Costeo-api/internal/application/pos"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Dobles en memoria con semántica transaccional: el runner toma un snapshot
// del almacén antes de ejecutar fn y lo restaura completo si fn falla, igual
// que un Rollback real. Permite probar atomicidad sin base de datos.

var errInjected = errors.New("fallo inyectado de persistencia")

type store struct {
	ingredients map[string]*entity.Ingredient
	recipes     map[string][]*entity.RecipeLine // clave productID|size
	menuItems   map[string]*entity.MenuItem
	prices      map[string]*entity.MenuItemPrice // clave productID|size
	sales       map[string]*entity.Sale
	breakdowns  map[string][]*entity.CostBreakdownLine
	wastes      map[string]*entity.WasteLog
	movements   []*entity.StockMovement

	lockOrder          []string // ids en el orden en que se pidió GetForUpdate
	failMovementCreate bool     // fuerza fallo después de persistir la venta, antes de descontar
}

func newStore() *store {
	return &store{
		ingredients: map[string]*entity.Ingredient{},
		recipes:     map[string][]*entity.RecipeLine{},
		menuItems:   map[string]*entity.MenuItem{},
		prices:      map[string]*entity.MenuItemPrice{},
		sales:       map[string]*entity.Sale{},
		breakdowns:  map[string][]*entity.CostBreakdownLine{},
		wastes:      map[string]*entity.WasteLog{},
	}
}

func recipeKey(productID, size string) string { return productID + "|" + size }

func (s *store) snapshot() *store {
	snap := newStore()
	for k, v := range s.ingredients {
		c := *v
		snap.ingredients[k] = &c
	}
	for k, v := range s.recipes {
		lines := make([]*entity.RecipeLine, len(v))
		for i, l := range v {
			c := *l
			lines[i] = &c
		}
		snap.recipes[k] = lines
	}
	for k, v := range s.menuItems {
		c := *v
		snap.menuItems[k] = &c
	}
	for k, v := range s.prices {
		c := *v
		snap.prices[k] = &c
	}
	for k, v := range s.sales {
		c := *v
		snap.sales[k] = &c
	}
	for k, v := range s.breakdowns {
		lines := make([]*entity.CostBreakdownLine, len(v))
		for i, l := range v {
			c := *l
			lines[i] = &c
		}
		snap.breakdowns[k] = lines
	}
	for k, v := range s.wastes {
		c := *v
		snap.wastes[k] = &c
	}
	snap.movements = append([]*entity.StockMovement(nil), s.movements...)
	return snap
}

func (s *store) restore(snap *store) {
	s.ingredients = snap.ingredients
	s.recipes = snap.recipes
	s.menuItems = snap.menuItems
	s.prices = snap.prices
	s.sales = snap.sales
	s.breakdowns = snap.breakdowns
	s.wastes = snap.wastes
	s.movements = snap.movements
}

type fakeTxRunner struct{ s *store }

var _ pos.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	menuRepo repository.MenuRepository,
	saleRepo repository.SaleRepository,
	wasteRepo repository.WasteRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(
		&fakeIngredientRepo{r.s},
		&fakeRecipeRepo{r.s},
		&fakeMenuRepo{r.s},
		&fakeSaleRepo{r.s},
		&fakeWasteRepo{r.s},
		&fakeMovementRepo{r.s},
	)
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

type fakeIngredientRepo struct{ s *store }

func (r *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := r.s.ingredients[id]
	if !ok {
		return nil, nil
	}
	c := *ing
	return &c, nil
}

func (r *fakeIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	r.s.lockOrder = append(r.s.lockOrder, id)
	return r.GetByID(id)
}

func (r *fakeIngredientRepo) UpdateStock(ing *entity.Ingredient) error {
	stored, ok := r.s.ingredients[ing.ID]
	if !ok {
		return errors.New("ingrediente inexistente")
	}
	stored.TotalContentStock = ing.TotalContentStock
	stored.PackageStock = ing.PackageStock
	stored.UpdatedAt = ing.UpdatedAt
	return nil
}

func (r *fakeIngredientRepo) ListByCategory(category string, limit, offset int) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range r.s.ingredients {
		if category == "" || ing.Category == category {
			c := *ing
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeRecipeRepo struct{ s *store }

func (r *fakeRecipeRepo) ListByProductAndSize(productID, size string) ([]*entity.RecipeLine, error) {
	return r.s.recipes[recipeKey(productID, size)], nil
}

type fakeMenuRepo struct{ s *store }

func (r *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	item, ok := r.s.menuItems[id]
	if !ok {
		return nil, nil
	}
	c := *item
	return &c, nil
}

func (r *fakeMenuRepo) GetPrice(productID, size string) (*entity.MenuItemPrice, error) {
	price, ok := r.s.prices[recipeKey(productID, size)]
	if !ok {
		return nil, nil
	}
	c := *price
	return &c, nil
}

type fakeSaleRepo struct{ s *store }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	c := *sale
	r.s.sales[sale.ID] = &c
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	c := *sale
	return &c, nil
}

func (r *fakeSaleRepo) Update(sale *entity.Sale) error {
	if _, ok := r.s.sales[sale.ID]; !ok {
		return errors.New("venta inexistente")
	}
	c := *sale
	r.s.sales[sale.ID] = &c
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.s.sales, id)
	delete(r.s.breakdowns, id)
	return nil
}

func (r *fakeSaleRepo) CreateBreakdownLines(lines []*entity.CostBreakdownLine) error {
	for _, line := range lines {
		c := *line
		r.s.breakdowns[line.SaleID] = append(r.s.breakdowns[line.SaleID], &c)
	}
	return nil
}

func (r *fakeSaleRepo) DeleteBreakdownLines(saleID string) error {
	delete(r.s.breakdowns, saleID)
	return nil
}

func (r *fakeSaleRepo) ListBreakdownLines(saleID string) ([]*entity.CostBreakdownLine, error) {
	return r.s.breakdowns[saleID], nil
}

type fakeWasteRepo struct{ s *store }

func (r *fakeWasteRepo) Create(waste *entity.WasteLog) error {
	c := *waste
	r.s.wastes[waste.ID] = &c
	return nil
}

func (r *fakeWasteRepo) GetByID(id string) (*entity.WasteLog, error) {
	waste, ok := r.s.wastes[id]
	if !ok {
		return nil, nil
	}
	c := *waste
	return &c, nil
}

func (r *fakeWasteRepo) Update(waste *entity.WasteLog) error {
	if _, ok := r.s.wastes[waste.ID]; !ok {
		return errors.New("merma inexistente")
	}
	c := *waste
	r.s.wastes[waste.ID] = &c
	return nil
}

func (r *fakeWasteRepo) Delete(id string) error {
	delete(r.s.wastes, id)
	return nil
}

type fakeMovementRepo struct{ s *store }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.s.failMovementCreate {
		return errInjected
	}
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}

func (r *fakeMovementRepo) ListByIngredient(ingredientID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.IngredientID == ingredientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByReference(reference string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.Reference == reference {
			out = append(out, m)
		}
	}
	return out, nil
}

// testLogger logger silenciado para los tests.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// escenario base: Leche "1 L" a 100 con 5000 ml; Latte/16oz usa 200 ml a 150.
func storeConLatte(totalML int64) *store {
	s := newStore()
	s.ingredients["ing-leche"] = &entity.Ingredient{
		ID:                "ing-leche",
		Name:              "Leche",
		Category:          "Lácteos",
		PackagePrice:      decimal.NewFromInt(100),
		PackageContent:    "1 L",
		PackageStock:      totalML / 1000,
		TotalContentStock: decimal.NewFromInt(totalML),
	}
	s.menuItems["latte"] = &entity.MenuItem{ID: "latte", Name: "Latte", Category: "Bebidas calientes"}
	s.recipes[recipeKey("latte", "16oz")] = []*entity.RecipeLine{
		{FinishedProductID: "latte", SizeVariant: "16oz", IngredientID: "ing-leche", AmountPerUnit: decimal.NewFromInt(200), Unit: "ML"},
	}
	s.prices[recipeKey("latte", "16oz")] = &entity.MenuItemPrice{ProductID: "latte", SizeVariant: "16oz", UnitPrice: decimal.NewFromInt(150)}
	return s
}
