package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para productos.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	ListByEmpresa(empresaID string) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error

	// DescontarStock resta cantidad solo si hay stock suficiente (UPDATE
	// condicional). Devuelve false cuando no afectó ninguna fila.
	DescontarStock(productoID string, cantidad int) (bool, error)
}
