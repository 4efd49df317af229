package pos_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/pos"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleUC(s *store) *pos.SaleUseCase {
	return pos.NewSaleUseCase(&fakeTxRunner{s}, &fakeSaleRepo{s}, testLogger())
}

func TestCreateSale_EscenarioLeche(t *testing.T) {
	// Leche "1 L" a 100, 5000 ml en stock; Latte/16oz usa 200 ml.
	// Vender 3: descuenta 600 ml, costo por ml 0.1, COGS 60.
	s := storeConLatte(5000)
	uc := newSaleUC(s)

	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(450)), "ingreso = 150 * 3")
	assert.True(t, resp.COGS.Equal(decimal.NewFromInt(60)), "COGS = 200*3*0.1")

	leche := s.ingredients["ing-leche"]
	assert.True(t, leche.TotalContentStock.Equal(decimal.NewFromInt(4400)))
	assert.EqualValues(t, 4, leche.PackageStock, "floor(4400/1000)")

	sale := s.sales[resp.SaleID]
	require.NotNil(t, sale, "la venta quedó persistida")
	assert.True(t, sale.COGS.Equal(decimal.NewFromInt(60)))

	breakdown := s.breakdowns[resp.SaleID]
	require.Len(t, breakdown, 1, "una línea de detalle por ingrediente")
	assert.Equal(t, "ing-leche", breakdown[0].IngredientID)
	assert.True(t, breakdown[0].QuantityConsumed.Equal(decimal.NewFromInt(600)))
	assert.True(t, breakdown[0].CostAtSale.Equal(decimal.NewFromInt(60)))

	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeOUT, s.movements[0].Type)
	assert.True(t, s.movements[0].Quantity.Equal(decimal.NewFromInt(-600)))
	assert.Equal(t, resp.SaleID, s.movements[0].Reference)
}

func TestCreateSale_StockInsuficiente(t *testing.T) {
	// 400 ml disponibles, se requieren 600: falla con detalle y no muta nada.
	s := storeConLatte(400)
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})

	require.Error(t, err)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Leche", insufficient.IngredientName)
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(600)))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(400)))

	assert.True(t, s.ingredients["ing-leche"].TotalContentStock.Equal(decimal.NewFromInt(400)))
	assert.Empty(t, s.sales)
	assert.Empty(t, s.movements)
}

func TestCreateSale_SinReceta(t *testing.T) {
	s := storeConLatte(5000)
	s.menuItems["te"] = &entity.MenuItem{ID: "te", Name: "Té"}
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "te", SizeVariant: "12oz", Quantity: 1, StaffID: "staff-1",
	})

	assert.ErrorIs(t, err, domain.ErrNoRecipe)
	assert.Empty(t, s.sales)
}

func TestCreateSale_SinPrecio(t *testing.T) {
	s := storeConLatte(5000)
	delete(s.prices, recipeKey("latte", "16oz"))
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 1, StaffID: "staff-1",
	})

	assert.ErrorIs(t, err, domain.ErrPriceNotConfigured)
	// Rollback completo: el stock queda intacto.
	assert.True(t, s.ingredients["ing-leche"].TotalContentStock.Equal(decimal.NewFromInt(5000)))
	assert.Empty(t, s.sales)
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	s := storeConLatte(5000)
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "no-existe", SizeVariant: "16oz", Quantity: 1, StaffID: "staff-1",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_EntradaInvalida(t *testing.T) {
	uc := newSaleUC(storeConLatte(5000))

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 0,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Atomicidad bajo fallo simulado: el fallo se inyecta después de persistir la
// venta y su detalle, en el primer movimiento de stock. Tras el rollback no
// debe existir la venta y el stock no debe haber cambiado.
func TestCreateSale_AtomicidadBajoFallo(t *testing.T) {
	s := storeConLatte(5000)
	s.failMovementCreate = true
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})

	require.ErrorIs(t, err, errInjected)
	assert.Empty(t, s.sales, "sin venta huérfana tras el rollback")
	assert.Empty(t, s.breakdowns)
	assert.Empty(t, s.movements)
	assert.True(t, s.ingredients["ing-leche"].TotalContentStock.Equal(decimal.NewFromInt(5000)))
	assert.EqualValues(t, 5, s.ingredients["ing-leche"].PackageStock)
}

// Editar con los mismos parámetros no cambia el stock: la restauración
// completa más la reaplicación idéntica suman cero.
func TestEditSale_RestauracionIdempotente(t *testing.T) {
	s := storeConLatte(5000)
	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})
	require.NoError(t, err)

	edited, err := uc.EditSale(context.Background(), resp.SaleID, dto.EditSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})

	require.NoError(t, err)
	assert.True(t, edited.COGS.Equal(decimal.NewFromInt(60)))
	leche := s.ingredients["ing-leche"]
	assert.True(t, leche.TotalContentStock.Equal(decimal.NewFromInt(4400)), "restaurar+reaplicar idéntico neto cero")
	assert.EqualValues(t, 4, leche.PackageStock)
}

func TestEditSale_CambioDeCantidad(t *testing.T) {
	s := storeConLatte(5000)
	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})
	require.NoError(t, err)

	edited, err := uc.EditSale(context.Background(), resp.SaleID, dto.EditSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 1, StaffID: "staff-2",
	})

	require.NoError(t, err)
	assert.True(t, edited.TotalAmount.Equal(decimal.NewFromInt(150)))
	assert.True(t, edited.COGS.Equal(decimal.NewFromInt(20)))
	// 5000 - 200*1: la edición actúa como si la venta original nunca hubiera ocurrido.
	assert.True(t, s.ingredients["ing-leche"].TotalContentStock.Equal(decimal.NewFromInt(4800)))

	sale := s.sales[resp.SaleID]
	require.NotNil(t, sale, "se edita la fila existente, no se inserta otra")
	assert.EqualValues(t, 1, sale.Quantity)
	assert.Len(t, s.sales, 1)
	require.Len(t, s.breakdowns[resp.SaleID], 1, "el detalle se reemplaza")
	assert.True(t, s.breakdowns[resp.SaleID][0].QuantityConsumed.Equal(decimal.NewFromInt(200)))
}

func TestEditSale_SinStockParaNuevaCantidad(t *testing.T) {
	// 700 ml: alcanza para 3 (600) pero no para 4 (800) ni siquiera tras restaurar.
	s := storeConLatte(700)
	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})
	require.NoError(t, err)

	_, err = uc.EditSale(context.Background(), resp.SaleID, dto.EditSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 4, StaffID: "staff-1",
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	// Rollback total: la venta original y su descuento quedan como estaban.
	assert.True(t, s.ingredients["ing-leche"].TotalContentStock.Equal(decimal.NewFromInt(100)))
	assert.EqualValues(t, 3, s.sales[resp.SaleID].Quantity)
}

func TestEditSale_NoExiste(t *testing.T) {
	uc := newSaleUC(storeConLatte(5000))

	_, err := uc.EditSale(context.Background(), "no-existe", dto.EditSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 1, StaffID: "staff-1",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSale_RestauraStock(t *testing.T) {
	s := storeConLatte(5000)
	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})
	require.NoError(t, err)

	err = uc.DeleteSale(context.Background(), resp.SaleID, "staff-2")

	require.NoError(t, err)
	leche := s.ingredients["ing-leche"]
	assert.True(t, leche.TotalContentStock.Equal(decimal.NewFromInt(5000)))
	assert.EqualValues(t, 5, leche.PackageStock)
	assert.Empty(t, s.sales)
	assert.Empty(t, s.breakdowns, "el detalle cae junto con la venta")
}

func TestDeleteSale_NoExiste(t *testing.T) {
	uc := newSaleUC(storeConLatte(5000))
	assert.ErrorIs(t, uc.DeleteSale(context.Background(), "no-existe", "staff-1"), domain.ErrNotFound)
}

// Con receta multi-ingrediente las filas se bloquean en orden ascendente de id,
// sin importar el orden de las líneas.
func TestCreateSale_OrdenDeBloqueoDeterminista(t *testing.T) {
	s := storeConLatte(5000)
	s.ingredients["ing-azucar"] = &entity.Ingredient{
		ID: "ing-azucar", Name: "Azúcar", PackagePrice: decimal.NewFromInt(50),
		PackageContent: "1 KG", TotalContentStock: decimal.NewFromInt(10000), PackageStock: 10,
	}
	// La línea de azúcar va primero que la de leche a propósito.
	s.recipes[recipeKey("latte", "16oz")] = []*entity.RecipeLine{
		{FinishedProductID: "latte", SizeVariant: "16oz", IngredientID: "ing-leche", AmountPerUnit: decimal.NewFromInt(200), Unit: "ML"},
		{FinishedProductID: "latte", SizeVariant: "16oz", IngredientID: "ing-azucar", AmountPerUnit: decimal.NewFromInt(10), Unit: "G"},
	}
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 1, StaffID: "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ing-azucar", "ing-leche"}, s.lockOrder)
}

func TestGetSale(t *testing.T) {
	s := storeConLatte(5000)
	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1",
	})
	require.NoError(t, err)

	detail, err := uc.GetSale(context.Background(), resp.SaleID)

	require.NoError(t, err)
	assert.Equal(t, "latte", detail.ProductID)
	assert.EqualValues(t, 3, detail.Quantity)
	require.Len(t, detail.Breakdown, 1)
	assert.True(t, detail.Breakdown[0].CostAtSale.Equal(decimal.NewFromInt(60)))
}

// Conservación: la suma de movimientos de un ingrediente siempre explica la
// diferencia entre el stock inicial y el actual.
func TestConservacionDeStock(t *testing.T) {
	s := storeConLatte(5000)
	uc := newSaleUC(s)
	ctx := context.Background()

	resp, err := uc.CreateSale(ctx, dto.CreateSaleRequest{ProductID: "latte", SizeVariant: "16oz", Quantity: 3, StaffID: "staff-1"})
	require.NoError(t, err)
	_, err = uc.EditSale(ctx, resp.SaleID, dto.EditSaleRequest{ProductID: "latte", SizeVariant: "16oz", Quantity: 2, StaffID: "staff-1"})
	require.NoError(t, err)
	resp2, err := uc.CreateSale(ctx, dto.CreateSaleRequest{ProductID: "latte", SizeVariant: "16oz", Quantity: 1, StaffID: "staff-1"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteSale(ctx, resp2.SaleID, "staff-1"))

	neto := decimal.Zero
	for _, m := range s.movements {
		neto = neto.Add(m.Quantity)
	}
	actual := s.ingredients["ing-leche"].TotalContentStock
	assert.True(t, actual.Sub(decimal.NewFromInt(5000)).Equal(neto),
		"stock actual %s - inicial 5000 debe igualar el neto de movimientos %s", actual, neto)
	assert.True(t, actual.Equal(decimal.NewFromInt(4600)), "5000 - 400 (venta editada a 2)")
}
