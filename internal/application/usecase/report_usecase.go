package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/polipostres-api/internal/domain"
	"github.com/jhoicas/polipostres-api/internal/domain/analytics"
	"github.com/jhoicas/polipostres-api/internal/domain/entity"
	"github.com/jhoicas/polipostres-api/internal/domain/ledger"
)

// SalesReportGenerator puerto de generación del PDF del reporte diario (DIP);
// lo implementa internal/infrastructure/pdf.
type SalesReportGenerator interface {
	GenerateDailyReport(day time.Time, sales []entity.Sale, total decimal.Decimal) ([]byte, error)
}

// ReportUseCase produce el reporte diario de ventas en PDF.
type ReportUseCase struct {
	ledger    *ledger.Ledger
	generator SalesReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(l *ledger.Ledger, g SalesReportGenerator) *ReportUseCase {
	return &ReportUseCase{ledger: l, generator: g}
}

// Daily genera el PDF con las ventas del día indicado (YYYY-MM-DD, UTC).
// Un día sin ventas produce un reporte válido con tabla vacía y total cero.
func (uc *ReportUseCase) Daily(day string) ([]byte, error) {
	if day == "" {
		return nil, &domain.ValidationError{Field: "date", Reason: "es requerido"}
	}
	target, err := time.Parse(dayLayout, day)
	if err != nil {
		return nil, &domain.ValidationError{Field: "date", Reason: "formato esperado YYYY-MM-DD"}
	}

	sales := analytics.FilterByDay(uc.ledger.Sales(), target)
	return uc.generator.GenerateDailyReport(target, sales, analytics.TotalRevenue(sales))
}
