package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// ProyectoHandler maneja los proyectos de empresa con metas y gastos.
type ProyectoHandler struct {
	uc *usecase.ProyectoUseCase
}

// NewProyectoHandler construye el handler de proyectos.
func NewProyectoHandler(uc *usecase.ProyectoUseCase) *ProyectoHandler {
	return &ProyectoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear proyecto
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProyectoRequest  true  "datos del proyecto"
// @Success      201   {object}  dto.ProyectoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proyectos [post]
func (h *ProyectoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProyectoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearProyecto(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar proyectos de la empresa
// @Tags         proyectos
// @Produce      json
// @Success      200  {array}  dto.ProyectoResponse
// @Router       /api/proyectos [get]
func (h *ProyectoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarProyectos(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Obtener godoc
// @Summary      Detalle de un proyecto
// @Tags         proyectos
// @Produce      json
// @Success      200  {object}  dto.ProyectoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id} [get]
func (h *ProyectoHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerProyecto(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar proyecto
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarProyectoRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ProyectoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id} [put]
func (h *ProyectoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarProyectoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ActualizarProyecto(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar proyecto
// @Tags         proyectos
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id} [delete]
func (h *ProyectoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarProyecto(GetEmpresaID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AgregarMeta godoc
// @Summary      Agregar meta al checklist del proyecto
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearMetaRequest  true  "título y orden"
// @Success      201   {object}  dto.MetaResponse
// @Router       /api/proyectos/{id}/metas [post]
func (h *ProyectoHandler) AgregarMeta(c *fiber.Ctx) error {
	var in dto.CrearMetaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.AgregarMeta(c.Context(), GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarMetas godoc
// @Summary      Checklist del proyecto
// @Tags         proyectos
// @Produce      json
// @Success      200  {array}  dto.MetaResponse
// @Router       /api/proyectos/{id}/metas [get]
func (h *ProyectoHandler) ListarMetas(c *fiber.Ctx) error {
	out, err := h.uc.ListarMetas(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CompletarMeta godoc
// @Summary      Marcar meta como completada (recalcula progreso)
// @Tags         proyectos
// @Produce      json
// @Success      200  {object}  dto.MetaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id}/metas/{metaId}/completar [post]
func (h *ProyectoHandler) CompletarMeta(c *fiber.Ctx) error {
	out, err := h.uc.CompletarMeta(c.Context(), GetEmpresaID(c), c.Params("id"), c.Params("metaId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ReabrirMeta godoc
// @Summary      Reabrir una meta completada (recalcula progreso)
// @Tags         proyectos
// @Produce      json
// @Success      200  {object}  dto.MetaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id}/metas/{metaId}/reabrir [post]
func (h *ProyectoHandler) ReabrirMeta(c *fiber.Ctx) error {
	out, err := h.uc.ReabrirMeta(c.Context(), GetEmpresaID(c), c.Params("id"), c.Params("metaId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// RegistrarGasto godoc
// @Summary      Imputar gasto al proyecto
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearGastoProyectoRequest  true  "concepto, monto y fecha"
// @Success      201   {object}  dto.GastoProyectoResponse
// @Router       /api/proyectos/{id}/gastos [post]
func (h *ProyectoHandler) RegistrarGasto(c *fiber.Ctx) error {
	var in dto.CrearGastoProyectoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.RegistrarGasto(c.Context(), GetEmpresaID(c), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarGastos godoc
// @Summary      Gastos imputados al proyecto
// @Tags         proyectos
// @Produce      json
// @Success      200  {array}  dto.GastoProyectoResponse
// @Router       /api/proyectos/{id}/gastos [get]
func (h *ProyectoHandler) ListarGastos(c *fiber.Ctx) error {
	out, err := h.uc.ListarGastos(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Estadísticas de proyectos de la empresa
// @Tags         proyectos
// @Produce      json
// @Success      200  {object}  dto.EstadisticasProyectosResponse
// @Router       /api/proyectos/estadisticas [get]
func (h *ProyectoHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
