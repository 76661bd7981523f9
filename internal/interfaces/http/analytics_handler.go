package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/polipostres-api/internal/application/usecase"
)

// AnalyticsHandler maneja el resumen del panel de análisis de ventas.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de ventas del panel de análisis
// @Description  Ingresos totales, unidades vendidas, top-5 de productos y la
//               serie de ingresos por día (ascendente, días en UTC).
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
