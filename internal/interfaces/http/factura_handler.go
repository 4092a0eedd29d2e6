package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// FacturaHandler maneja las facturas por pagar del usuario.
type FacturaHandler struct {
	uc *usecase.FacturaUseCase
}

// NewFacturaHandler construye el handler de facturas.
func NewFacturaHandler(uc *usecase.FacturaUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar factura por pagar
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearFacturaRequest  true  "datos de la factura"
// @Success      201   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/facturas [post]
func (h *FacturaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearFactura(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar facturas
// @Tags         facturas
// @Produce      json
// @Param        estado  query  string  false  "pendiente | pagada | vencida"
// @Success      200  {array}  dto.FacturaResponse
// @Router       /api/v1/financial/facturas [get]
func (h *FacturaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarFacturas(GetUserID(c), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Pagar godoc
// @Summary      Marcar factura como pagada
// @Tags         facturas
// @Produce      json
// @Success      200  {object}  dto.FacturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/facturas/{id}/pagar [post]
func (h *FacturaHandler) Pagar(c *fiber.Ctx) error {
	out, err := h.uc.MarcarPagada(GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen de facturas
// @Tags         facturas
// @Produce      json
// @Success      200  {object}  dto.ResumenFacturasResponse
// @Router       /api/v1/financial/facturas/resumen [get]
func (h *FacturaHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar factura propia
// @Tags         facturas
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/facturas/{id} [delete]
func (h *FacturaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarFactura(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
