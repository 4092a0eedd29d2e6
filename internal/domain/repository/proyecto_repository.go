package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// EstadisticasProyectos agregado de proyectos de una empresa.
type EstadisticasProyectos struct {
	Total            int
	PorEstado        map[string]int // código de estado → cantidad
	ProgresoPromedio float64
}

// ProyectoRepository define el puerto de persistencia para proyectos, sus
// metas y sus gastos. Las mutaciones de metas se usan dentro de una
// transacción para que el recálculo de progreso sea atómico.
type ProyectoRepository interface {
	Create(proyecto *entity.Proyecto) error
	GetByID(id string) (*entity.Proyecto, error)
	ListByEmpresa(empresaID string) ([]*entity.Proyecto, error)
	Update(proyecto *entity.Proyecto) error
	Delete(id string) error

	CrearMeta(meta *entity.ProyectoMeta) error
	GetMeta(metaID string) (*entity.ProyectoMeta, error)
	UpdateMeta(meta *entity.ProyectoMeta) error
	// ListMetas metas del proyecto ordenadas por Orden ascendente.
	ListMetas(proyectoID string) ([]*entity.ProyectoMeta, error)

	CrearGasto(gasto *entity.ProyectoGasto) error
	ListGastos(proyectoID string) ([]*entity.ProyectoGasto, error)

	Estadisticas(empresaID string) (*EstadisticasProyectos, error)
}
