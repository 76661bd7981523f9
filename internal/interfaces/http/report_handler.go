package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/polipostres-api/internal/application/usecase"
)

// ReportHandler maneja la descarga del reporte diario en PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Reporte diario de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        date  query  string  true  "Día del reporte (YYYY-MM-DD, UTC)"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date")
	pdf, err := h.uc.Daily(date)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="ventas-%s.pdf"`, date))
	return c.Send(pdf)
}
