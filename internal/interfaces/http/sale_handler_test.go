package http_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/polipostres-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Sales
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_RegistrarDescuentaStock(t *testing.T) {
	app, _ := buildTestApp()
	p := createProduct(t, app, "Torta", 25.50, 10)

	var sale dto.SaleResponse
	resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.RecordSaleRequest{
		ProductID: p.ID,
		Quantity:  3,
	}, &sale)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, "Torta", sale.ProductName)
	assert.True(t, sale.TotalPrice.Equal(decimal.NewFromFloat(76.50)))

	var after dto.ProductResponse
	doJSON(t, app, http.MethodGet, "/api/products/"+p.ID, nil, &after)
	assert.Equal(t, 7, after.Stock)
}

func TestVentas_StockInsuficienteRetorna409ConDisponible(t *testing.T) {
	app, _ := buildTestApp()
	p := createProduct(t, app, "Cheesecake", 60000, 7)

	var errResp dto.ErrorResponse
	resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.RecordSaleRequest{
		ProductID: p.ID,
		Quantity:  999,
	}, &errResp)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)
	require.NotNil(t, errResp.Available, "el cuerpo debe traer las unidades disponibles")
	assert.Equal(t, 7, *errResp.Available)

	// Nada cambió: ni el stock ni el historial.
	var after dto.ProductResponse
	doJSON(t, app, http.MethodGet, "/api/products/"+p.ID, nil, &after)
	assert.Equal(t, 7, after.Stock)

	var list dto.SaleListResponse
	doJSON(t, app, http.MethodGet, "/api/sales", nil, &list)
	assert.Zero(t, list.Total)
}

func TestVentas_ProductoDesconocidoRetorna404(t *testing.T) {
	app, _ := buildTestApp()

	var errResp dto.ErrorResponse
	resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.RecordSaleRequest{
		ProductID: "no-existe",
		Quantity:  1,
	}, &errResp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestVentas_HistorialMasRecientePrimero(t *testing.T) {
	app, _ := buildTestApp()
	p := createProduct(t, app, "Brownie", 5000, 75)

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.RecordSaleRequest{
			ProductID: p.ID,
			Quantity:  i + 1,
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var list dto.SaleListResponse
	resp := doJSON(t, app, http.MethodGet, "/api/sales", nil, &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, 3, list.Items[0].Quantity, "la última venta debe listarse primero")
	assert.Equal(t, 1, list.Items[2].Quantity)
	assert.True(t, list.TotalRevenue.Equal(decimal.NewFromInt(30000)))
}

func TestVentas_FiltroPorFechaInvalidaRetorna400(t *testing.T) {
	app, _ := buildTestApp()

	var errResp dto.ErrorResponse
	resp := doJSON(t, app, http.MethodGet, "/api/sales?date=12-08-2026", nil, &errResp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestVentas_FiltroPorDiaSoloIncluyeEseDia(t *testing.T) {
	app, l := buildTestApp()
	p := createProduct(t, app, "Macarons", 4000, 200)

	_, err := l.RecordSale(p.ID, 5)
	require.NoError(t, err)

	// Las ventas se registran con timestamp de hoy (UTC); un día sin ventas
	// debe devolver historial vacío con total cero.
	var empty dto.SaleListResponse
	resp := doJSON(t, app, http.MethodGet, "/api/sales?date=2000-01-01", nil, &empty)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, empty.Total)
	assert.True(t, empty.TotalRevenue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Analytics
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_ResumenConciliaConElHistorial(t *testing.T) {
	app, _ := buildTestApp()
	torta := createProduct(t, app, "Torta", 50000, 10)
	brownie := createProduct(t, app, "Brownie", 5000, 75)

	for _, req := range []dto.RecordSaleRequest{
		{ProductID: torta.ID, Quantity: 2},
		{ProductID: brownie.ID, Quantity: 10},
		{ProductID: torta.ID, Quantity: 1},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/sales", req, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var summary dto.SalesSummaryDTO
	resp := doJSON(t, app, http.MethodGet, "/api/analytics/summary", nil, &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(200000)),
		"3×50000 + 10×5000 = 200000")
	assert.Equal(t, 13, summary.TotalUnitsSold)

	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "Brownie", summary.TopProducts[0].Name, "Brownie lidera por unidades")
	assert.Equal(t, 10, summary.TopProducts[0].Units)

	// Todas las ventas son de hoy: un solo punto en la serie, que concilia.
	require.Len(t, summary.RevenueByDay, 1)
	assert.True(t, summary.RevenueByDay[0].Total.Equal(summary.TotalRevenue))
}
