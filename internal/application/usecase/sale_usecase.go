package usecase

import (
	"time"

	"github.com/jhoicas/polipostres-api/internal/application/dto"
	"github.com/jhoicas/polipostres-api/internal/domain"
	"github.com/jhoicas/polipostres-api/internal/domain/analytics"
	"github.com/jhoicas/polipostres-api/internal/domain/entity"
	"github.com/jhoicas/polipostres-api/internal/domain/ledger"
)

// dayLayout formato de fecha para el filtro del historial (YYYY-MM-DD, UTC).
const dayLayout = "2006-01-02"

// SaleUseCase registra ventas y expone el historial.
type SaleUseCase struct {
	ledger *ledger.Ledger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(l *ledger.Ledger) *SaleUseCase {
	return &SaleUseCase{ledger: l}
}

// Record registra una venta: descuenta stock y congela nombre y precio total.
func (uc *SaleUseCase) Record(in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "es requerido"}
	}
	s, err := uc.ledger.RecordSale(in.ProductID, in.Quantity)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

// List devuelve el historial de ventas, más reciente primero. Si day no está
// vacío (YYYY-MM-DD) filtra al día calendario indicado, en UTC, e incluye el
// total de ingresos de lo listado.
func (uc *SaleUseCase) List(day string) (*dto.SaleListResponse, error) {
	sales := uc.ledger.Sales()

	if day != "" {
		target, err := time.Parse(dayLayout, day)
		if err != nil {
			return nil, &domain.ValidationError{Field: "date", Reason: "formato esperado YYYY-MM-DD"}
		}
		sales = analytics.FilterByDay(sales, target)
	}

	// Presentación: la venta más reciente va primero.
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		items = append(items, *toSaleResponse(&sales[i]))
	}
	return &dto.SaleListResponse{
		Items:        items,
		Total:        len(items),
		TotalRevenue: analytics.TotalRevenue(sales),
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		TotalPrice:  s.TotalPrice,
		Date:        s.Timestamp,
	}
}
