package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// IngresoHandler maneja los ingresos del usuario.
type IngresoHandler struct {
	uc *usecase.IngresoUseCase
}

// NewIngresoHandler construye el handler de ingresos.
func NewIngresoHandler(uc *usecase.IngresoUseCase) *IngresoHandler {
	return &IngresoHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar ingreso
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearIngresoRequest  true  "datos del ingreso"
// @Success      201   {object}  dto.IngresoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/ingresos [post]
func (h *IngresoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearIngresoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearIngreso(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar ingresos del período
// @Tags         ingresos
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.IngresoResponse
// @Router       /api/v1/financial/ingresos [get]
func (h *IngresoHandler) Listar(c *fiber.Ctx) error {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.ListarIngresos(GetUserID(c), desde, hasta, queryPage(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Total godoc
// @Summary      Total de ingresos del período
// @Tags         ingresos
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/financial/ingresos/total [get]
func (h *IngresoHandler) Total(c *fiber.Ctx) error {
	desde, respErr := queryFecha(c, "desde")
	if respErr != nil {
		return respErr
	}
	hasta, respErr := queryFecha(c, "hasta")
	if respErr != nil {
		return respErr
	}
	total, err := h.uc.TotalPeriodo(GetUserID(c), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"total": total})
}

// Eliminar godoc
// @Summary      Eliminar ingreso propio
// @Tags         ingresos
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/ingresos/{id} [delete]
func (h *IngresoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarIngreso(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
