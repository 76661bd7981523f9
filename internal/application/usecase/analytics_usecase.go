package usecase

import (
	"github.com/jhoicas/polipostres-api/internal/application/dto"
	"github.com/jhoicas/polipostres-api/internal/domain/analytics"
	"github.com/jhoicas/polipostres-api/internal/domain/ledger"
)

// AnalyticsUseCase arma el resumen del panel de análisis a partir de las
// proyecciones puras del paquete analytics. No guarda estado: cada llamada
// recalcula sobre el historial vigente.
type AnalyticsUseCase struct {
	ledger *ledger.Ledger
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(l *ledger.Ledger) *AnalyticsUseCase {
	return &AnalyticsUseCase{ledger: l}
}

// GetSummary devuelve ingresos totales, unidades vendidas, top-5 de productos
// y la serie de ingresos por día (ascendente, días en UTC).
func (uc *AnalyticsUseCase) GetSummary() (*dto.SalesSummaryDTO, error) {
	sales := uc.ledger.Sales()

	top := analytics.TopProducts(sales, analytics.DefaultTopN)
	topDTO := make([]dto.TopProductDTO, 0, len(top))
	for _, p := range top {
		topDTO = append(topDTO, dto.TopProductDTO{Name: p.Name, Units: p.Units})
	}

	byDay := analytics.RevenueByDay(sales)
	byDayDTO := make([]dto.DailyRevenueDTO, 0, len(byDay))
	for _, d := range byDay {
		byDayDTO = append(byDayDTO, dto.DailyRevenueDTO{
			Date:  d.Day.Format(dayLayout),
			Total: d.Total,
		})
	}

	return &dto.SalesSummaryDTO{
		TotalRevenue:   analytics.TotalRevenue(sales),
		TotalUnitsSold: analytics.TotalUnitsSold(sales),
		TopProducts:    topDTO,
		RevenueByDay:   byDayDTO,
	}, nil
}
