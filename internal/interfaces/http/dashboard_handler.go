package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen financiero y el reporte PDF.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen financiero del período
// @Tags         dashboard
// @Produce      json
// @Param        periodo  query  string  false  "mes_actual | mes_anterior | anio_actual"
// @Success      200  {object}  dto.ResumenFinancieroResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context(), GetUserID(c), c.Query("periodo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ReportePDF godoc
// @Summary      Reporte financiero del período en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Param        periodo  query  string  false  "mes_actual | mes_anterior | anio_actual"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/reporte/pdf [get]
func (h *DashboardHandler) ReportePDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ReporteMensualPDF(c.Context(), GetUserID(c), c.Query("periodo"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
