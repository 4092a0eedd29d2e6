package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// VentaHandler maneja el catálogo de productos y el registro de ventas.
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler de ventas.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// CrearProducto godoc
// @Summary      Dar de alta un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empresa/productos [post]
func (h *VentaHandler) CrearProducto(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearProducto(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarProductos godoc
// @Summary      Catálogo de productos de la empresa
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/empresa/productos [get]
func (h *VentaHandler) ListarProductos(c *fiber.Ctx) error {
	out, err := h.uc.ListarProductos(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarProducto godoc
// @Summary      Actualizar un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarProductoRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresa/productos/{id} [put]
func (h *VentaHandler) ActualizarProducto(c *fiber.Ctx) error {
	var in dto.ActualizarProductoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ActualizarProducto(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EliminarProducto godoc
// @Summary      Retirar un producto del catálogo
// @Tags         productos
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa/productos/{id} [delete]
func (h *VentaHandler) EliminarProducto(c *fiber.Ctx) error {
	if err := h.uc.EliminarProducto(GetEmpresaID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegistrarVenta godoc
// @Summary      Registrar una venta (descuenta stock)
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "producto y cantidad"
// @Success      201   {object}  dto.VentaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empleado/ventas [post]
func (h *VentaHandler) RegistrarVenta(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.RegistrarVenta(c.Context(), GetUserID(c), GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// VentasEmpleado godoc
// @Summary      Ventas del empleado autenticado
// @Tags         ventas
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/empleado/ventas [get]
func (h *VentaHandler) VentasEmpleado(c *fiber.Ctx) error {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.VentasEmpleado(GetUserID(c), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ResumenEmpleado godoc
// @Summary      Resumen de ventas del empleado
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.ResumenVentasResponse
// @Router       /api/empleado/ventas/resumen [get]
func (h *VentaHandler) ResumenEmpleado(c *fiber.Ctx) error {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.ResumenEmpleado(GetUserID(c), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// VentasEmpresa godoc
// @Summary      Ventas de toda la empresa
// @Tags         ventas
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/empresa/ventas [get]
func (h *VentaHandler) VentasEmpresa(c *fiber.Ctx) error {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.VentasEmpresa(GetEmpresaID(c), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ResumenEmpresa godoc
// @Summary      Resumen de ventas de la empresa
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.ResumenVentasResponse
// @Router       /api/empresa/ventas/resumen [get]
func (h *VentaHandler) ResumenEmpresa(c *fiber.Ctx) error {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.ResumenEmpresa(GetEmpresaID(c), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
