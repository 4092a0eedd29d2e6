package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// TareaHandler maneja las tareas asignadas por la empresa a sus empleados.
type TareaHandler struct {
	uc *usecase.TareaUseCase
}

// NewTareaHandler construye el handler de tareas.
func NewTareaHandler(uc *usecase.TareaUseCase) *TareaHandler {
	return &TareaHandler{uc: uc}
}

// Crear godoc
// @Summary      Asignar tarea a un empleado
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearTareaRequest  true  "empleado, título, prioridad"
// @Success      201   {object}  dto.TareaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tareas [post]
func (h *TareaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearTareaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearTarea(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarEmpresa godoc
// @Summary      Tareas de la empresa
// @Tags         tareas
// @Produce      json
// @Param        estado  query  string  false  "pendiente | en_progreso | completada | cancelada"
// @Success      200  {array}  dto.TareaResponse
// @Router       /api/tareas/empresa [get]
func (h *TareaHandler) ListarEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.TareasEmpresa(GetEmpresaID(c), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListarEmpleado godoc
// @Summary      Tareas asignadas al empleado autenticado
// @Tags         tareas
// @Produce      json
// @Param        estado  query  string  false  "pendiente | en_progreso | completada | cancelada"
// @Success      200  {array}  dto.TareaResponse
// @Router       /api/tareas/mias [get]
func (h *TareaHandler) ListarEmpleado(c *fiber.Ctx) error {
	out, err := h.uc.TareasEmpleado(GetUserID(c), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de una tarea
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambiarEstadoTareaRequest  true  "estado destino y motivo"
// @Success      200   {object}  dto.TareaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tareas/{id}/estado [put]
func (h *TareaHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoTareaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CambiarEstado(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Comentar godoc
// @Summary      Comentar una tarea
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComentarTareaRequest  true  "comentario"
// @Success      201   {object}  dto.ComentarioTareaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tareas/{id}/comentarios [post]
func (h *TareaHandler) Comentar(c *fiber.Ctx) error {
	var in dto.ComentarTareaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Comentar(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Comentarios godoc
// @Summary      Comentarios de una tarea
// @Tags         tareas
// @Produce      json
// @Success      200  {array}  dto.ComentarioTareaResponse
// @Router       /api/tareas/{id}/comentarios [get]
func (h *TareaHandler) Comentarios(c *fiber.Ctx) error {
	out, err := h.uc.Comentarios(GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Historial godoc
// @Summary      Historial de cambios de estado de una tarea
// @Tags         tareas
// @Produce      json
// @Success      200  {array}  dto.HistorialTareaResponse
// @Router       /api/tareas/{id}/historial [get]
func (h *TareaHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EstadisticasEmpresa godoc
// @Summary      Conteo de tareas de la empresa por estado
// @Tags         tareas
// @Produce      json
// @Success      200  {object}  dto.EstadisticasTareasResponse
// @Router       /api/tareas/empresa/estadisticas [get]
func (h *TareaHandler) EstadisticasEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.EstadisticasEmpresa(GetEmpresaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EstadisticasEmpleado godoc
// @Summary      Conteo de tareas del empleado por estado
// @Tags         tareas
// @Produce      json
// @Success      200  {object}  dto.EstadisticasTareasResponse
// @Router       /api/tareas/mias/estadisticas [get]
func (h *TareaHandler) EstadisticasEmpleado(c *fiber.Ctx) error {
	out, err := h.uc.EstadisticasEmpleado(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
