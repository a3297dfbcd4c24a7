package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/advisory"
	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	"github.com/jhoicas/kitchen-stores/internal/domain/entity"
)

// AIHandler maneja las recomendaciones y el asistente de consultas.
type AIHandler struct {
	uc *advisory.UseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *advisory.UseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GetTips godoc
// @Summary      Recomendaciones en caché
// @Description  No llama al proveedor de IA; devuelve el último resultado calculado.
// @Tags         advisory
// @Produce      json
// @Success      200  {object}  dto.TipsResponse
// @Router       /api/advisory/tips [get]
func (h *AIHandler) GetTips(c *fiber.Ctx) error {
	tips, at := h.uc.Tips()
	return c.JSON(dto.TipsResponse{Tips: toTipDTOs(tips), RefreshedAt: at})
}

// RefreshTips godoc
// @Summary      Recalcular recomendaciones
// @Description  Consulta al proveedor de IA. Ante falla devuelve las recomendaciones de respaldo.
// @Tags         advisory
// @Produce      json
// @Success      200  {object}  dto.TipsResponse
// @Router       /api/advisory/tips/refresh [post]
func (h *AIHandler) RefreshTips(c *fiber.Ctx) error {
	h.uc.RefreshTips(c.UserContext())
	tips, at := h.uc.Tips()
	return c.JSON(dto.TipsResponse{Tips: toTipDTOs(tips), RefreshedAt: at})
}

// Chat godoc
// @Summary      Consulta libre al asistente (respuesta en hindi)
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "query"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/advisory/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	answer, err := h.uc.Chat(c.UserContext(), req.Query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ChatResponse{Answer: answer})
}

func toTipDTOs(tips []entity.IntelligenceTip) []dto.TipDTO {
	out := make([]dto.TipDTO, 0, len(tips))
	for _, t := range tips {
		out = append(out, dto.TipDTO{
			Title:       t.Title,
			Description: t.Description,
			Type:        t.Type,
			Items:       t.Items,
		})
	}
	return out
}
