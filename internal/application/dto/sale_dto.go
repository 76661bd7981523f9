package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// SaleResponse salida de una venta registrada.
// ProductName y TotalPrice son instantáneas del momento de la venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Date        time.Time       `json:"date"`
}

// SaleListResponse historial de ventas (más reciente primero) con el total
// acumulado de lo listado — el pie "Ingresos Totales del día" del dashboard.
type SaleListResponse struct {
	Items        []SaleResponse  `json:"items"`
	Total        int             `json:"total"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
