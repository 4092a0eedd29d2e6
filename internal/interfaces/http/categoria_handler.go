package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// CategoriaHandler maneja las categorías de movimientos.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler de categorías.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear categoría propia
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCategoriaRequest  true  "nombre y tipo"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/financial/categorias [post]
func (h *CategoriaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearCategoria(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar categorías visibles (globales + propias)
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/v1/financial/categorias [get]
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarCategorias(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Dar de baja una categoría propia
// @Tags         categorias
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/financial/categorias/{id} [delete]
func (h *CategoriaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarCategoria(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
