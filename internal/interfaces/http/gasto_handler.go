package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// GastoHandler maneja gastos personales, gastos de empleado y el flujo de
// aprobación de la empresa.
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler de gastos.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar gasto personal
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearGastoRequest  true  "datos del gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/gastos [post]
func (h *GastoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearGastoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearGasto(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar gastos del período
// @Tags         gastos
// @Produce      json
// @Param        desde   query  string  false  "YYYY-MM-DD"
// @Param        hasta   query  string  false  "YYYY-MM-DD"
// @Param        limit   query  int     false  "máx 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.GastoResponse
// @Router       /api/v1/financial/gastos [get]
func (h *GastoHandler) Listar(c *fiber.Ctx) error {
	desde, hasta, respErr := rangoQuery(c)
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.ListarGastos(GetUserID(c), desde, hasta, queryPage(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Totales de gastos por categoría
// @Tags         gastos
// @Produce      json
// @Success      200  {array}  dto.ResumenCategoriaResponse
// @Router       /api/v1/financial/gastos/resumen [get]
func (h *GastoHandler) Resumen(c *fiber.Ctx) error {
	desde, hasta, respErr := rangoQuery(c)
	if respErr != nil {
		return respErr
	}
	out, err := h.uc.ResumenPorCategoria(GetUserID(c), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar gasto propio
// @Tags         gastos
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/gastos/{id} [delete]
func (h *GastoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarGasto(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Flujo de empresa ─────────────────────────────────────────────────────────

// Pendientes godoc
// @Summary      Gastos de empleados pendientes de aprobación
// @Tags         empresa
// @Produce      json
// @Success      200  {array}  dto.GastoResponse
// @Router       /api/empresa/gastos/pendientes [get]
func (h *GastoHandler) Pendientes(c *fiber.Ctx) error {
	out, err := h.uc.GastosPendientes(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar gasto pendiente de un empleado
// @Tags         empresa
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DecisionGastoRequest  false  "comentario opcional"
// @Success      200   {object}  dto.GastoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresa/gastos/{id}/aprobar [post]
func (h *GastoHandler) Aprobar(c *fiber.Ctx) error {
	var in dto.DecisionGastoRequest
	// El body es opcional: sin comentario también es una decisión válida.
	_ = c.BodyParser(&in)
	out, err := h.uc.AprobarGasto(GetEmpresaID(c), c.Params("id"), in.Comentario)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Rechazar godoc
// @Summary      Rechazar gasto pendiente de un empleado
// @Tags         empresa
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DecisionGastoRequest  true  "motivo del rechazo"
// @Success      200   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresa/gastos/{id}/rechazar [post]
func (h *GastoHandler) Rechazar(c *fiber.Ctx) error {
	var in dto.DecisionGastoRequest
	_ = c.BodyParser(&in)
	out, err := h.uc.RechazarGasto(GetEmpresaID(c), c.Params("id"), in.Comentario)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ── Flujo de empleado ────────────────────────────────────────────────────────

// CrearComoEmpleado godoc
// @Summary      Registrar gasto como empleado (umbral de auto-aprobación)
// @Tags         empleado
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearGastoRequest  true  "datos del gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empleado/gastos [post]
func (h *GastoHandler) CrearComoEmpleado(c *fiber.Ctx) error {
	var in dto.CrearGastoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearGastoEmpleado(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarComoEmpleado godoc
// @Summary      Gastos propios del empleado
// @Tags         empleado
// @Produce      json
// @Param        estado  query  string  false  "pendiente | aprobado | rechazado"
// @Success      200  {array}  dto.GastoResponse
// @Router       /api/empleado/gastos [get]
func (h *GastoHandler) ListarComoEmpleado(c *fiber.Ctx) error {
	out, err := h.uc.GastosEmpleado(GetUserID(c), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ── Gastos planificados ──────────────────────────────────────────────────────

// CrearPlan godoc
// @Summary      Registrar gasto planificado
// @Tags         gastos-planificados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearGastoPlanificadoRequest  true  "datos del plan"
// @Success      201   {object}  dto.GastoPlanificadoResponse
// @Router       /api/v1/financial/gastos-planificados [post]
func (h *GastoHandler) CrearPlan(c *fiber.Ctx) error {
	var in dto.CrearGastoPlanificadoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearGastoPlanificado(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarPlanes godoc
// @Summary      Listar gastos planificados
// @Tags         gastos-planificados
// @Produce      json
// @Param        estado  query  string  false  "pendiente | ejecutado | cancelado"
// @Success      200  {array}  dto.GastoPlanificadoResponse
// @Router       /api/v1/financial/gastos-planificados [get]
func (h *GastoHandler) ListarPlanes(c *fiber.Ctx) error {
	out, err := h.uc.ListarGastosPlanificados(GetUserID(c), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EjecutarPlan godoc
// @Summary      Ejecutar un gasto planificado (genera el gasto real)
// @Tags         gastos-planificados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EjecutarGastoPlanificadoRequest  true  "tipo de pago, monto y fecha opcionales"
// @Success      201   {object}  dto.GastoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/gastos-planificados/{id}/ejecutar [post]
func (h *GastoHandler) EjecutarPlan(c *fiber.Ctx) error {
	var in dto.EjecutarGastoPlanificadoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.EjecutarGastoPlanificado(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CancelarPlan godoc
// @Summary      Cancelar un gasto planificado
// @Tags         gastos-planificados
// @Produce      json
// @Success      200  {object}  dto.GastoPlanificadoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/gastos-planificados/{id}/cancelar [post]
func (h *GastoHandler) CancelarPlan(c *fiber.Ctx) error {
	out, err := h.uc.CancelarGastoPlanificado(GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
