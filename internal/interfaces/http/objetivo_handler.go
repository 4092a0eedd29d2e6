package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// ObjetivoHandler maneja los objetivos de ahorro.
type ObjetivoHandler struct {
	uc *usecase.ObjetivoUseCase
}

// NewObjetivoHandler construye el handler de objetivos.
func NewObjetivoHandler(uc *usecase.ObjetivoUseCase) *ObjetivoHandler {
	return &ObjetivoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear objetivo de ahorro
// @Tags         objetivos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearObjetivoRequest  true  "datos del objetivo"
// @Success      201   {object}  dto.ObjetivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/objetivos [post]
func (h *ObjetivoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearObjetivoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearObjetivo(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar objetivos de ahorro
// @Tags         objetivos
// @Produce      json
// @Success      200  {array}  dto.ObjetivoResponse
// @Router       /api/v1/financial/objetivos [get]
func (h *ObjetivoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarObjetivos(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Agregar godoc
// @Summary      Aportar dinero a un objetivo
// @Tags         objetivos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoObjetivoRequest  true  "monto y descripción"
// @Success      200   {object}  dto.ObjetivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/objetivos/{id}/agregar [post]
func (h *ObjetivoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.MovimientoObjetivoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.AgregarDinero(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Retirar godoc
// @Summary      Retirar dinero de un objetivo
// @Tags         objetivos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoObjetivoRequest  true  "monto y descripción"
// @Success      200   {object}  dto.ObjetivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/objetivos/{id}/retirar [post]
func (h *ObjetivoHandler) Retirar(c *fiber.Ctx) error {
	var in dto.MovimientoObjetivoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.RetirarDinero(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Historial godoc
// @Summary      Historial de movimientos del objetivo
// @Tags         objetivos
// @Produce      json
// @Success      200  {array}  dto.MovimientoObjetivoResponse
// @Router       /api/v1/financial/objetivos/{id}/historial [get]
func (h *ObjetivoHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(GetUserID(c), c.Params("id"), queryPage(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen agregado de objetivos
// @Tags         objetivos
// @Produce      json
// @Success      200  {object}  dto.ResumenObjetivosResponse
// @Router       /api/v1/financial/objetivos/resumen [get]
func (h *ObjetivoHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar objetivo propio
// @Tags         objetivos
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/objetivos/{id} [delete]
func (h *ObjetivoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarObjetivo(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
