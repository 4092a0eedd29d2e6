package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// PresupuestoHandler maneja los presupuestos mensuales por categoría.
type PresupuestoHandler struct {
	uc *usecase.PresupuestoUseCase
}

// NewPresupuestoHandler construye el handler de presupuestos.
func NewPresupuestoHandler(uc *usecase.PresupuestoUseCase) *PresupuestoHandler {
	return &PresupuestoHandler{uc: uc}
}

// Crear godoc
// @Summary      Fijar presupuesto mensual por categoría
// @Tags         presupuestos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPresupuestoRequest  true  "categoría, límite, mes, año"
// @Success      201   {object}  dto.PresupuestoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/presupuestos [post]
func (h *PresupuestoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPresupuestoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearPresupuesto(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar presupuestos del mes
// @Tags         presupuestos
// @Produce      json
// @Param        mes   query  int  false  "1-12, por defecto mes actual"
// @Param        anio  query  int  false  "por defecto año actual"
// @Success      200  {array}  dto.PresupuestoResponse
// @Router       /api/v1/financial/presupuestos [get]
func (h *PresupuestoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarPresupuestos(GetUserID(c), c.QueryInt("mes"), c.QueryInt("anio"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// actualizarLimiteRequest body para cambiar el límite de un presupuesto.
type actualizarLimiteRequest struct {
	LimiteMensual decimal.Decimal `json:"limite_mensual" validate:"required"`
}

// ActualizarLimite godoc
// @Summary      Cambiar el límite de un presupuesto
// @Tags         presupuestos
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.PresupuestoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/presupuestos/{id} [put]
func (h *PresupuestoHandler) ActualizarLimite(c *fiber.Ctx) error {
	var in actualizarLimiteRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ActualizarLimite(GetUserID(c), c.Params("id"), in.LimiteMensual)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar presupuesto propio
// @Tags         presupuestos
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/presupuestos/{id} [delete]
func (h *PresupuestoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarPresupuesto(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
