package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/sales"
)

// SaleHandler maneja los endpoints de ventas y reportes de caja.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Start godoc
// @Summary      Abrir venta
// @Description  Crea la venta con total 0 y sin forma de pago.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartSaleRequest  true  "datos del cliente"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.StartSale(c.Context(), req, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AddLine godoc
// @Summary      Agregar línea a una venta
// @Description  La demanda se expresa por referencia + talla; el asignador
//               FIFO elige los ítems (nota más antigua primero) y descuenta
//               stock en la misma transacción. Si no alcanza el stock, nada
//               se descuenta y responde 409.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "sale id"
// @Param        body  body  dto.AddLineRequest  true  "demanda"
// @Success      201   {array}  dto.SaleLineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/lines [post]
func (h *SaleHandler) AddLine(c *fiber.Ctx) error {
	var req dto.AddLineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.AddLine(c.Context(), c.Params("id"), req, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Finalize godoc
// @Summary      Cerrar venta con forma de pago
// @Description  Registra la forma de pago; las líneas quedan inmutables. Una
//               venta sin líneas no se puede cerrar.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "sale id"
// @Param        body  body  dto.FinalizeSaleRequest  true  "forma de pago"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/finalize [post]
func (h *SaleHandler) Finalize(c *fiber.Ctx) error {
	var req dto.FinalizeSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	if err := h.uc.FinalizeSale(c.Context(), c.Params("id"), req.PaymentMethod, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar venta
// @Description  Restituye las cantidades vendidas a sus ítems de origen y
//               marca la venta CANCELLED. Cancelar dos veces responde 409.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "sale id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.CancelSale(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "sale id"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SalesByPeriod godoc
// @Summary      Reporte de ventas por período
// @Description  Solo ventas finalizadas con forma de pago registrada.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "YYYY-MM-DD"
// @Param        to    query  string  true  "YYYY-MM-DD (inclusivo)"
// @Success      200   {array}  dto.SalesPeriodRow
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *SaleHandler) SalesByPeriod(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.uc.SalesByPeriod(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DailySummary godoc
// @Summary      Resumen de caja de un día
// @Description  Cantidad de ventas, total y desglose por forma de pago. Sin
//               parámetro date usa el día de hoy.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD"
// @Success      200   {object}  dto.DailySummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *SaleHandler) DailySummary(c *fiber.Ctx) error {
	day := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return badRequest(c, "parámetro date inválido, formato YYYY-MM-DD")
		}
		day = parsed
	}
	resp, err := h.uc.DailySummary(c.Context(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
