package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/audit"
	"github.com/jhoicas/consigna-api/internal/application/dto"
)

// AuditHandler maneja la consulta del log de acciones.
type AuditHandler struct {
	uc *audit.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// ListByPeriod godoc
// @Summary      Log de acciones por período
// @Description  Entradas del log de auditoría en un rango de fechas.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  true   "fecha inicial YYYY-MM-DD"
// @Param        to      query  string  true   "fecha final YYYY-MM-DD (inclusiva)"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ActionLogEntryResponse
// @Router       /api/logs [get]
func (h *AuditHandler) ListByPeriod(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	resp, err := h.uc.ListByPeriod(c.Context(), from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListByActor godoc
// @Summary      Log de acciones por usuario
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "id del usuario"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ActionLogEntryResponse
// @Router       /api/logs/actor/{id} [get]
func (h *AuditHandler) ListByActor(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	resp, err := h.uc.ListByActor(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
