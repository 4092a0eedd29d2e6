package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// ConfiguracionRepository define el puerto de persistencia para la
// configuración del sistema (pares clave/valor).
type ConfiguracionRepository interface {
	GetAll() ([]entity.Configuracion, error)
	Upsert(clave, valor string) error
}
