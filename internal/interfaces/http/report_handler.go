package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler exporta el catálogo como libro de Excel o registro PDF.
type ReportHandler struct {
	uc *inventory.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportStock godoc
// @Summary      Exportar catálogo a Excel
// @Description  Las columnas se pueden volver a importar sin cambios.
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/stock.xlsx [get]
func (h *ReportHandler) ExportStock(c *fiber.Ctx) error {
	data, err := h.uc.ExportWorkbookBytes(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, attachment("stock", "xlsx"))
	return c.Send(data)
}

// StockRegisterPDF godoc
// @Summary      Registro de stock en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockRegisterPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockReportPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment("stock-register", "pdf"))
	return c.Send(data)
}

func attachment(base, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s-%s.%s"`, base, time.Now().Format("2006-01-02"), ext)
}
