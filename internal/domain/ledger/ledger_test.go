package ledger_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/polipostres-api/internal/domain"
	"github.com/jhoicas/polipostres-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// addCake agrega el producto de referencia: Torta a 25.50 con 10 unidades.
func addCake(t *testing.T, l *ledger.Ledger) string {
	t.Helper()
	p, err := l.AddProduct("Torta", decimal.NewFromFloat(25.50), 10, "ref1")
	require.NoError(t, err)
	return p.ID
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_GeneraIDUnicoYAparaceUnaVez(t *testing.T) {
	l := ledger.New()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p, err := l.AddProduct("Brownie", decimal.NewFromInt(5000), 3, "")
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "cada producto debe recibir un ID nunca emitido antes")
		seen[p.ID] = true
	}
	assert.Len(t, l.Products(), 50)
}

func TestAddProduct_ValidaEntradas(t *testing.T) {
	l := ledger.New()

	cases := []struct {
		name  string
		pname string
		price decimal.Decimal
		stock int
	}{
		{"nombre vacío", "", decimal.NewFromInt(100), 1},
		{"nombre solo espacios", "   ", decimal.NewFromInt(100), 1},
		{"precio negativo", "Torta", decimal.NewFromInt(-1), 1},
		{"stock negativo", "Torta", decimal.NewFromInt(100), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.AddProduct(tc.pname, tc.price, tc.stock, "")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Atómico: ningún producto a medias quedó en el catálogo.
	assert.Empty(t, l.Products(), "una creación rechazada no debe dejar rastro")
}

func TestAddProduct_PrecioYStockCeroSonValidos(t *testing.T) {
	l := ledger.New()

	p, err := l.AddProduct("Muestra gratis", decimal.Zero, 0, "")
	require.NoError(t, err)
	assert.True(t, p.Price.IsZero())
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.InStock(), "stock cero debe clasificar como agotado")
}

// ──────────────────────────────────────────────────────────────────────────────
// EditProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestEditProduct_ActualizaSoloLosCamposIndicados(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	p, err := l.EditProduct(id, ledger.ProductPatch{
		Name:  ptr("Torta Red Velvet"),
		Price: ptr(decimal.NewFromInt(50000)),
	})
	require.NoError(t, err)

	assert.Equal(t, id, p.ID, "el ID nunca cambia")
	assert.Equal(t, "Torta Red Velvet", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 10, p.Stock, "el stock no indicado debe quedar igual")
	assert.Equal(t, "ref1", p.ImageRef, "la imagen no indicada debe quedar igual")
}

func TestEditProduct_RechazaValoresInvalidosSinMutar(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	_, err := l.EditProduct(id, ledger.ProductPatch{
		Name:  ptr("Nuevo nombre"),
		Price: ptr(decimal.NewFromInt(-5)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := l.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, "Torta", p.Name, "una edición rechazada no debe aplicar ningún campo")
}

func TestEditProduct_IDDesconocido(t *testing.T) {
	l := ledger.New()
	_, err := l.EditProduct("no-existe", ledger.ProductPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_FijaValorAbsoluto(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	p, err := l.AdjustStock(id, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock, "AdjustStock fija, no suma ni resta")

	// No genera venta alguna.
	assert.Empty(t, l.Sales(), "la corrección administrativa no registra ventas")
}

func TestAdjustStock_RechazaNegativoSinMutar(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	_, err := l.AdjustStock(id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, _ := l.GetProduct(id)
	assert.Equal(t, 10, p.Stock, "el stock debe quedar intacto tras el rechazo")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: Torta a 25.50 con 10 unidades, se venden 3.
func TestRecordSale_DescuentaStockYCongelaTotal(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	s, err := l.RecordSale(id, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Quantity)
	assert.True(t, s.TotalPrice.Equal(decimal.NewFromFloat(76.50)),
		"total esperado 76.50, obtenido %s", s.TotalPrice)
	assert.Equal(t, "Torta", s.ProductName)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Timestamp.IsZero())

	p, _ := l.GetProduct(id)
	assert.Equal(t, 7, p.Stock)
}

func TestRecordSale_StockInsuficienteNoMutaNada(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)
	_, err := l.RecordSale(id, 3) // deja el stock en 7
	require.NoError(t, err)

	before := l.Sales()

	_, err = l.RecordSale(id, 999)
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient), "el error debe portar el stock disponible")
	assert.Equal(t, 7, insufficient.Available)
	assert.Equal(t, 999, insufficient.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Atómico: ni el stock ni el historial cambiaron.
	p, _ := l.GetProduct(id)
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, before, l.Sales(), "el historial debe quedar byte a byte igual")
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	for _, qty := range []int{0, -1} {
		_, err := l.RecordSale(id, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestRecordSale_ProductoDesconocido(t *testing.T) {
	l := ledger.New()
	_, err := l.RecordSale("no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El agotamiento del stock sigue exactamente a las ventas: sin correcciones
// intermedias, la suma de cantidades vendidas nunca supera el stock inicial.
func TestRecordSale_AgotamientoSigueLasVentas(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l) // stock inicial 10

	sold := 0
	for _, qty := range []int{4, 3, 2, 1, 1} {
		s, err := l.RecordSale(id, qty)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			continue
		}
		sold += s.Quantity
	}

	p, _ := l.GetProduct(id)
	assert.Equal(t, 10-sold, p.Stock)
	assert.LessOrEqual(t, sold, 10, "no se puede vender más que el stock inicial")
	assert.GreaterOrEqual(t, p.Stock, 0, "el stock jamás baja de cero")
}

// Congelamiento de precio: cambiar el precio después no altera ventas pasadas.
func TestRecordSale_PrecioEsInstantanea(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	s, err := l.RecordSale(id, 2)
	require.NoError(t, err)

	_, err = l.EditProduct(id, ledger.ProductPatch{Price: ptr(decimal.NewFromInt(99999))})
	require.NoError(t, err)

	sales := l.Sales()
	require.Len(t, sales, 1)
	assert.True(t, sales[0].TotalPrice.Equal(s.TotalPrice),
		"el total de una venta pasada no se recalcula al cambiar el precio")
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_ConservaVentasHistoricas(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)

	s, err := l.RecordSale(id, 3)
	require.NoError(t, err)

	require.NoError(t, l.DeleteProduct(id))

	_, err = l.GetProduct(id)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el producto debe salir del catálogo")

	sales := l.Sales()
	require.Len(t, sales, 1, "la venta previa debe seguir en el historial")
	assert.Equal(t, s.ID, sales[0].ID)
	assert.Equal(t, "Torta", sales[0].ProductName, "el nombre quedó congelado en la venta")
	assert.Equal(t, id, sales[0].ProductID, "la referencia hacia atrás se conserva")
}

func TestDeleteProduct_IDDesconocido(t *testing.T) {
	l := ledger.New()
	assert.ErrorIs(t, l.DeleteProduct("no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas: las copias no exponen el estado interno
// ──────────────────────────────────────────────────────────────────────────────

func TestLecturas_DevuelvenCopias(t *testing.T) {
	l := ledger.New()
	id := addCake(t, l)
	_, err := l.RecordSale(id, 1)
	require.NoError(t, err)

	products := l.Products()
	products[0].Stock = -999
	sales := l.Sales()
	sales[0].Quantity = -999

	p, _ := l.GetProduct(id)
	assert.Equal(t, 9, p.Stock, "mutar la copia no debe tocar el ledger")
	assert.Equal(t, 1, l.Sales()[0].Quantity)
}

func TestSeedDemo_CargaElCatalogoCompleto(t *testing.T) {
	l := ledger.New()

	n, err := l.SeedDemo()
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Len(t, l.Products(), 6)
	assert.Empty(t, l.Sales(), "el seed no registra ventas")
}
