package postgres

import (
	"context"
	"fmt"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo implementación del puerto ConfiguracionRepository sobre
// PostgreSQL (tabla system_settings, pares clave/valor).
type ConfiguracionRepo struct {
	q Querier
}

// NewConfiguracionRepository construye el adaptador de configuración.
func NewConfiguracionRepository(q Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// GetAll todas las configuraciones persistidas.
func (r *ConfiguracionRepo) GetAll() ([]entity.Configuracion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT setting_key, setting_value FROM system_settings`)
	if err != nil {
		return nil, fmt.Errorf("list configuraciones: %w", err)
	}
	defer rows.Close()
	var list []entity.Configuracion
	for rows.Next() {
		var c entity.Configuracion
		if err := rows.Scan(&c.Clave, &c.Valor); err != nil {
			return nil, fmt.Errorf("scan configuracion: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza el valor de una clave.
func (r *ConfiguracionRepo) Upsert(clave, valor string) error {
	query := `
		INSERT INTO system_settings (setting_key, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value`
	if _, err := r.q.Exec(context.Background(), query, clave, valor); err != nil {
		return fmt.Errorf("upsert configuracion: %w", err)
	}
	return nil
}
