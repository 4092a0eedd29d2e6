package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// CategoriaUseCase categorías de movimientos: las globales del sistema más
// las propias del usuario.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso de categorías.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo}
}

// CrearCategoria crea una categoría propia del usuario.
func (uc *CategoriaUseCase) CrearCategoria(userID string, in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	tipo := entity.TipoMovimiento(in.TipoID)
	if !tipo.Valido() {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.CategoriaMovimiento{
		ID:        uuid.New().String(),
		UserID:    &userID,
		Nombre:    in.Nombre,
		Tipo:      tipo,
		Icono:     in.Icono,
		Color:     in.Color,
		Activa:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.categoriaRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoriaResponse(cat), nil
}

// ListarCategorias categorías visibles para el usuario: globales más propias.
func (uc *CategoriaUseCase) ListarCategorias(userID string) ([]*dto.CategoriaResponse, error) {
	cats, err := uc.categoriaRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// EliminarCategoria da de baja una categoría propia. Las globales no se
// pueden eliminar.
func (uc *CategoriaUseCase) EliminarCategoria(userID, categoriaID string) error {
	cat, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	if cat.UserID == nil {
		return domain.ErrForbidden
	}
	if *cat.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.categoriaRepo.Delete(categoriaID, userID)
}

func toCategoriaResponse(c *entity.CategoriaMovimiento) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		TipoID:    int(c.Tipo),
		Icono:     c.Icono,
		Color:     c.Color,
		EsGlobal:  c.UserID == nil,
		CreatedAt: c.CreatedAt,
	}
}
