package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para facturas por pagar.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	// ListByUser lista por usuario; estado nil devuelve todas.
	ListByUser(userID string, estado *entity.EstadoFactura) ([]*entity.Factura, error)
	Update(factura *entity.Factura) error
	Delete(id string) error
}
