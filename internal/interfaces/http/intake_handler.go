package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/inventory"
)

// IntakeHandler maneja los endpoints de notas de entrada en consignación.
type IntakeHandler struct {
	uc *inventory.IntakeUseCase
}

// NewIntakeHandler construye el handler.
func NewIntakeHandler(uc *inventory.IntakeUseCase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

// CreateBatch godoc
// @Summary      Abrir nota de entrada
// @Description  Registra una nota ACTIVE para un proveedor activo. El par
//               (proveedor, número de nota) es único.
// @Tags         intake
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "datos de la nota"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *IntakeHandler) CreateBatch(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.CreateBatch(c.Context(), req, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AddItem godoc
// @Summary      Agregar ítem a una nota
// @Description  Solo sobre notas ACTIVE; nota inexistente o en otro estado
//               responde 404. El código de etiqueta es único global.
// @Tags         intake
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "batch id"
// @Param        body  body  dto.AddItemRequest  true  "datos del ítem"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/items [post]
func (h *IntakeHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.AddItem(c.Context(), c.Params("id"), req, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Finalize godoc
// @Summary      Finalizar nota de entrada
// @Description  Cierra la nota; su stock queda disponible para venta. Una
//               nota sin ítems no se puede finalizar.
// @Tags         intake
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/finalize [post]
func (h *IntakeHandler) Finalize(c *fiber.Ctx) error {
	if err := h.uc.FinalizeBatch(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener nota por ID
// @Tags         intake
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *IntakeHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetBatch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListItems godoc
// @Summary      Listar ítems de una nota
// @Tags         intake
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {array}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/items [get]
func (h *IntakeHandler) ListItems(c *fiber.Ctx) error {
	resp, err := h.uc.ListBatchItems(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListByPeriod godoc
// @Summary      Listar notas por período
// @Tags         intake
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  true   "YYYY-MM-DD"
// @Param        to           query  string  true   "YYYY-MM-DD (inclusivo)"
// @Param        supplier_id  query  string  false  "filtrar por proveedor"
// @Success      200  {array}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/batches [get]
func (h *IntakeHandler) ListByPeriod(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.uc.ListBatchesByPeriod(c.Context(), from, to, c.Query("supplier_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
