package dto

import "github.com/shopspring/decimal"

// SalesSummaryDTO respuesta de GET /api/analytics/summary.
// Replica las cuatro vistas del panel de análisis: ingresos totales, unidades
// vendidas, top de productos y la serie de ingresos por día.
type SalesSummaryDTO struct {
	TotalRevenue   decimal.Decimal   `json:"total_revenue"`
	TotalUnitsSold int               `json:"total_units_sold"`
	TopProducts    []TopProductDTO   `json:"top_products"`
	RevenueByDay   []DailyRevenueDTO `json:"revenue_by_day"`
}

// TopProductDTO un producto del ranking de más vendidos.
type TopProductDTO struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// DailyRevenueDTO ingresos de un día calendario (UTC).
type DailyRevenueDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}
