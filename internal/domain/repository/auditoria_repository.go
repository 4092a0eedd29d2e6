package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// AuditoriaRepository define el puerto de persistencia para el registro de
// auditoría administrativa. El registro es append-only.
type AuditoriaRepository interface {
	Create(r *entity.RegistroAuditoria) error
	// ListRecientes últimas entradas, más reciente primero.
	ListRecientes(limit int) ([]*entity.RegistroAuditoria, error)
}
