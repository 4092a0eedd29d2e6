package postgres

import (
	"context"
	"fmt"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación del puerto AuditoriaRepository sobre PostgreSQL.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador de persistencia de auditoría.
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create inserta una entrada del registro de auditoría.
func (r *AuditoriaRepo) Create(reg *entity.RegistroAuditoria) error {
	query := `
		INSERT INTO audit_logs (id, user_id, accion, target_tipo, target_id, detalles, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		reg.ID, reg.UserID, reg.Accion, reg.TargetTipo, reg.TargetID, reg.Detalles, reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// ListRecientes últimas entradas de auditoría, más reciente primero.
func (r *AuditoriaRepo) ListRecientes(limit int) ([]*entity.RegistroAuditoria, error) {
	query := `
		SELECT id, user_id, accion, target_tipo, target_id, detalles, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.RegistroAuditoria
	for rows.Next() {
		var reg entity.RegistroAuditoria
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.Accion, &reg.TargetTipo, &reg.TargetID,
			&reg.Detalles, &reg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}
