package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/returns"
)

// ReturnHandler maneja los endpoints de devoluciones al proveedor.
type ReturnHandler struct {
	uc *returns.ReturnUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(uc *returns.ReturnUseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// ListBatches godoc
// @Summary      Listar notas candidatas a devolución
// @Description  Notas FINALIZED del proveedor con al menos un ítem en stock.
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        supplier_id  query  string  true  "supplier id"
// @Success      200  {array}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/returns/batches [get]
func (h *ReturnHandler) ListBatches(c *fiber.Ctx) error {
	supplierID := c.Query("supplier_id")
	if supplierID == "" {
		return badRequest(c, "parámetro supplier_id requerido")
	}
	resp, err := h.uc.ListReturnableBatches(c.Context(), supplierID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListItems godoc
// @Summary      Listar ítems devolvibles de una nota
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {array}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/returns/batches/{id}/items [get]
func (h *ReturnHandler) ListItems(c *fiber.Ctx) error {
	resp, err := h.uc.ListReturnableItems(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Process godoc
// @Summary      Procesar devolución al proveedor
// @Description  Descuenta las cantidades devueltas de los ítems indicados en
//               una sola transacción: si alguna línea falla, ninguna se
//               aplica. Devolver más de lo disponible responde 409.
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessReturnRequest  true  "líneas de devolución"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Process(c *fiber.Ctx) error {
	var req dto.ProcessReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	if err := h.uc.ProcessReturn(c.Context(), req, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
