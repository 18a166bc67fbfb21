package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/inventory"
)

// StockHandler maneja los endpoints de consulta de stock.
type StockHandler struct {
	uc *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Overview godoc
// @Summary      Vista de stock disponible
// @Description  Unidades disponibles agrupadas por referencia + talla.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        reference  query  string  false  "filtrar por referencia"
// @Param        size       query  string  false  "filtrar por talla"
// @Success      200  {array}  dto.StockGroupResponse
// @Router       /api/stock [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	resp, err := h.uc.Overview(c.Context(), c.Query("reference"), c.Query("size"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Plan godoc
// @Summary      Previsualizar plan de asignación FIFO
// @Description  Calcula qué ítems cubrirían la demanda sin comprometer stock.
//               El plan es indicativo: la venta vuelve a validar al confirmar.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        reference  query  string  true  "referencia"
// @Param        size       query  string  true  "talla"
// @Param        quantity   query  int     true  "unidades"
// @Success      200  {object}  dto.AllocationPlanResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/plan [get]
func (h *StockHandler) Plan(c *fiber.Ctx) error {
	qty := c.QueryInt("quantity")
	resp, err := h.uc.PlanAllocation(c.Context(), c.Query("reference"), c.Query("size"), qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Scan godoc
// @Summary      Buscar ítem por código de etiqueta
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "scan code"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/scan/{code} [get]
func (h *StockHandler) Scan(c *fiber.Ctx) error {
	resp, err := h.uc.FindByScanCode(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Stats godoc
// @Summary      Estadísticas generales del inventario
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockStatsResponse
// @Router       /api/stock/stats [get]
func (h *StockHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
