package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
)

// InventoryHandler maneja el catálogo y los movimientos del libro mayor.
type InventoryHandler struct {
	uc            *inventory.UseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// ListItems godoc
// @Summary      Buscar artículos del catálogo
// @Description  Críticos primero y luego por nombre. q vacío devuelve todo el catálogo.
// @Tags         inventory
// @Produce      json
// @Param        q  query  string  false  "Texto a buscar en nombre o categoría"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items := h.uc.Search(c.Context(), c.Query("q"))
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// GetItem godoc
// @Summary      Detalle de artículo con sus últimos movimientos
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.uc.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterTransaction godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "item_id, type (ADD|WITHDRAW), amount > 0, reason"
// @Success      201   {object}  dto.RegisterTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *InventoryHandler) RegisterTransaction(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterTransaction(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Listar movimientos, más recientes primero
// @Tags         inventory
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20, máx. 500)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.TransactionListDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	return c.JSON(h.uc.ListTransactions(c.Context(), page))
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Artículos en o bajo su mínimo con la cantidad sugerida de pedido,
//
//	ordenados por déficit relativo.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/reports/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list := h.replenishment.GenerateReplenishmentList(c.Context())
	return c.JSON(fiber.Map{"items": list, "total": len(list)})
}
