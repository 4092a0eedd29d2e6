package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para categorías de
// movimientos. Las listas incluyen las categorías globales (user_id NULL).
type CategoriaRepository interface {
	Create(cat *entity.CategoriaMovimiento) error
	GetByID(id string) (*entity.CategoriaMovimiento, error)
	ListByUser(userID string) ([]*entity.CategoriaMovimiento, error)
	Delete(id, userID string) error
}
