package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/application/partner"
)

// SupplierHandler maneja los endpoints de proveedores.
type SupplierHandler struct {
	uc *partner.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *partner.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar proveedor
// @Description  Valida y normaliza el CNPJ; CNPJ duplicado responde 409.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.CreateSupplier(c.Context(), req, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "supplier id"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar proveedor (parcial)
// @Description  Solo los campos presentes en el cuerpo se aplican; cada cambio
//               queda registrado en el log con su valor anterior. El CNPJ es
//               inmutable.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "supplier id"
// @Param        body  body  dto.SupplierPatch  true  "campos a cambiar"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [patch]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var patch dto.SupplierPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.UpdateSupplier(c.Context(), c.Params("id"), patch, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SetActive godoc
// @Summary      Activar o desactivar proveedor
// @Description  La baja es lógica. Desactivar falla con 409 si el proveedor
//               tiene notas de entrada ACTIVE.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "supplier id"
// @Param        body  body  object{active=bool}  true  "estado deseado"
// @Success      204
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/active [put]
func (h *SupplierHandler) SetActive(c *fiber.Ctx) error {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), req.Active, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "solo activos"
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListSuppliers(c.Context(), c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Search godoc
// @Summary      Buscar proveedores
// @Description  Busca por nombre (insensible a mayúsculas y acentos) o CNPJ.
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "término de búsqueda"
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers/search [get]
func (h *SupplierHandler) Search(c *fiber.Ctx) error {
	resp, err := h.uc.SearchSuppliers(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
