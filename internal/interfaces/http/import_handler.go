package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
)

// ImportHandler reemplaza el catálogo a partir de hojas de cálculo.
type ImportHandler struct {
	uc *inventory.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *inventory.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportFile godoc
// @Summary      Importar catálogo desde archivo
// @Description  Acepta .xlsx, .xlsm o .csv. Reemplaza el catálogo completo; el libro mayor se conserva.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Hoja de cálculo"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ImportHandler) ImportFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	out, err := h.uc.ImportFile(c.Context(), fh.Filename, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ImportRows godoc
// @Summary      Importar catálogo desde filas JSON
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRowsRequest  true  "headers y rows"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/import/rows [post]
func (h *ImportHandler) ImportRows(c *fiber.Ctx) error {
	var in dto.ImportRowsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ImportTable(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ImportGoogleSheet godoc
// @Summary      Importar catálogo desde Google Sheets
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GoogleSheetImportRequest  true  "url (enlace o ID) y range opcional"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/import/google-sheet [post]
func (h *ImportHandler) ImportGoogleSheet(c *fiber.Ctx) error {
	var in dto.GoogleSheetImportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ImportGoogleSheet(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
