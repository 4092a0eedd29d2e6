package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
	"github.com/aureum-app/aureum-api/pkg/logger"
)

// Repos en memoria para los tests de casos de uso. Implementan los mismos
// contratos condicionales que las queries reales (RowsAffected emulado con
// el estado en memoria).

// ── Gastos ───────────────────────────────────────────────────────────────────

type memGastoRepo struct {
	gastos map[string]*entity.Gasto
}

func newMemGastoRepo() *memGastoRepo {
	return &memGastoRepo{gastos: make(map[string]*entity.Gasto)}
}

func (r *memGastoRepo) Create(g *entity.Gasto) error {
	r.gastos[g.ID] = g
	return nil
}

func (r *memGastoRepo) GetByID(id string) (*entity.Gasto, error) {
	return r.gastos[id], nil
}

func (r *memGastoRepo) ListByUser(userID string, desde, hasta time.Time, limit, offset int) ([]*entity.Gasto, error) {
	var out []*entity.Gasto
	for _, g := range r.gastos {
		if g.UserID == userID && !g.Fecha.Before(desde) && !g.Fecha.After(hasta) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGastoRepo) ListByUserEstado(userID string, estado entity.EstadoAprobacion) ([]*entity.Gasto, error) {
	var out []*entity.Gasto
	for _, g := range r.gastos {
		if g.UserID == userID && g.EstadoAprobacion == estado {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGastoRepo) ListPendientesByEmpresa(empresaID string) ([]*entity.Gasto, error) {
	var out []*entity.Gasto
	for _, g := range r.gastos {
		if g.EmpresaID != nil && *g.EmpresaID == empresaID && g.EstadoAprobacion == entity.AprobacionPendiente {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memGastoRepo) Update(g *entity.Gasto) error {
	r.gastos[g.ID] = g
	return nil
}

func (r *memGastoRepo) Delete(id string) error {
	delete(r.gastos, id)
	return nil
}

// Aprobar emula el UPDATE condicional: solo toca filas pendientes de la empresa.
func (r *memGastoRepo) Aprobar(gastoID, empresaID, aprobadorID, comentario string, ahora time.Time) (bool, error) {
	g, ok := r.gastos[gastoID]
	if !ok || g.EmpresaID == nil || *g.EmpresaID != empresaID || g.EstadoAprobacion != entity.AprobacionPendiente {
		return false, nil
	}
	g.EstadoAprobacion = entity.AprobacionAprobado
	g.AprobadoPor = &aprobadorID
	g.FechaAprobacion = &ahora
	g.Notas = comentario
	return true, nil
}

func (r *memGastoRepo) Rechazar(gastoID, empresaID, aprobadorID, motivo string, ahora time.Time) (bool, error) {
	g, ok := r.gastos[gastoID]
	if !ok || g.EmpresaID == nil || *g.EmpresaID != empresaID || g.EstadoAprobacion != entity.AprobacionPendiente {
		return false, nil
	}
	g.EstadoAprobacion = entity.AprobacionRechazado
	g.AprobadoPor = &aprobadorID
	g.FechaAprobacion = &ahora
	g.Notas = motivo
	return true, nil
}

func (r *memGastoRepo) TotalPorPeriodo(userID string, desde, hasta time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, g := range r.gastos {
		if g.UserID == userID && g.EstadoAprobacion == entity.AprobacionAprobado &&
			!g.Fecha.Before(desde) && !g.Fecha.After(hasta) {
			total = total.Add(g.Monto)
		}
	}
	return total, nil
}

func (r *memGastoRepo) ResumenPorCategoria(userID string, desde, hasta time.Time) ([]repository.TotalCategoria, error) {
	return nil, nil
}

// ── Gastos planificados ──────────────────────────────────────────────────────

type memPlanRepo struct {
	planes map[string]*entity.GastoPlanificado
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{planes: make(map[string]*entity.GastoPlanificado)}
}

func (r *memPlanRepo) Create(p *entity.GastoPlanificado) error {
	r.planes[p.ID] = p
	return nil
}

func (r *memPlanRepo) GetByID(id string) (*entity.GastoPlanificado, error) {
	return r.planes[id], nil
}

func (r *memPlanRepo) ListByUser(userID string, estado *entity.EstadoPlanificado) ([]*entity.GastoPlanificado, error) {
	var out []*entity.GastoPlanificado
	for _, p := range r.planes {
		if p.UserID != userID {
			continue
		}
		if estado != nil && p.Estado != *estado {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPlanRepo) Update(p *entity.GastoPlanificado) error {
	r.planes[p.ID] = p
	return nil
}

func (r *memPlanRepo) Delete(id string) error {
	delete(r.planes, id)
	return nil
}

// ── Categorías ───────────────────────────────────────────────────────────────

type memCategoriaRepo struct {
	categorias map[string]*entity.CategoriaMovimiento
}

func newMemCategoriaRepo() *memCategoriaRepo {
	return &memCategoriaRepo{categorias: make(map[string]*entity.CategoriaMovimiento)}
}

func (r *memCategoriaRepo) Create(c *entity.CategoriaMovimiento) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *memCategoriaRepo) GetByID(id string) (*entity.CategoriaMovimiento, error) {
	return r.categorias[id], nil
}

func (r *memCategoriaRepo) ListByUser(userID string) ([]*entity.CategoriaMovimiento, error) {
	var out []*entity.CategoriaMovimiento
	for _, c := range r.categorias {
		if c.UserID == nil || *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCategoriaRepo) Delete(id, userID string) error {
	delete(r.categorias, id)
	return nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) ListEmpleados(empresaID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.EsEmpleadoDe(empresaID) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) DesvincularEmpleado(empresaID, empleadoID string) (bool, error) {
	u := r.users[empleadoID]
	if u == nil || !u.EsEmpleadoDe(empresaID) {
		return false, nil
	}
	u.CreatedByEmpresaID = nil
	return true, nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// ── Presupuestos ─────────────────────────────────────────────────────────────

type memPresupuestoRepo struct {
	presupuestos map[string]*entity.Presupuesto
	// errConsulta fuerza un fallo en GetByCategoriaMes para probar rutas
	// de mejor esfuerzo.
	errConsulta error
}

func newMemPresupuestoRepo() *memPresupuestoRepo {
	return &memPresupuestoRepo{presupuestos: make(map[string]*entity.Presupuesto)}
}

func (r *memPresupuestoRepo) Create(p *entity.Presupuesto) error {
	r.presupuestos[p.ID] = p
	return nil
}

func (r *memPresupuestoRepo) GetByID(id string) (*entity.Presupuesto, error) {
	return r.presupuestos[id], nil
}

func (r *memPresupuestoRepo) GetByCategoriaMes(userID, categoriaID string, mes, anio int) (*entity.Presupuesto, error) {
	if r.errConsulta != nil {
		return nil, r.errConsulta
	}
	for _, p := range r.presupuestos {
		if p.UserID == userID && p.CategoriaID == categoriaID && p.Mes == mes && p.Anio == anio {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPresupuestoRepo) ListByUser(userID string, mes, anio int) ([]*entity.Presupuesto, error) {
	var out []*entity.Presupuesto
	for _, p := range r.presupuestos {
		if p.UserID == userID && p.Mes == mes && p.Anio == anio {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPresupuestoRepo) Update(p *entity.Presupuesto) error {
	r.presupuestos[p.ID] = p
	return nil
}

func (r *memPresupuestoRepo) Delete(id string) error {
	delete(r.presupuestos, id)
	return nil
}

func (r *memPresupuestoRepo) AcumularGasto(presupuestoID string, monto decimal.Decimal) error {
	if p, ok := r.presupuestos[presupuestoID]; ok {
		p.GastadoActual = p.GastadoActual.Add(monto)
	}
	return nil
}

// ── Facturas ─────────────────────────────────────────────────────────────────

type memFacturaRepo struct {
	facturas map[string]*entity.Factura
}

func newMemFacturaRepo() *memFacturaRepo {
	return &memFacturaRepo{facturas: make(map[string]*entity.Factura)}
}

func (r *memFacturaRepo) Create(f *entity.Factura) error {
	r.facturas[f.ID] = f
	return nil
}

func (r *memFacturaRepo) GetByID(id string) (*entity.Factura, error) {
	return r.facturas[id], nil
}

func (r *memFacturaRepo) ListByUser(userID string, estado *entity.EstadoFactura) ([]*entity.Factura, error) {
	var out []*entity.Factura
	for _, f := range r.facturas {
		if f.UserID != userID {
			continue
		}
		if estado != nil && f.Estado != *estado {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *memFacturaRepo) Update(f *entity.Factura) error {
	r.facturas[f.ID] = f
	return nil
}

func (r *memFacturaRepo) Delete(id string) error {
	delete(r.facturas, id)
	return nil
}

// ── Objetivos ────────────────────────────────────────────────────────────────

type memObjetivoRepo struct {
	objetivos   map[string]*entity.Objetivo
	movimientos []*entity.ObjetivoMovimiento
}

func newMemObjetivoRepo() *memObjetivoRepo {
	return &memObjetivoRepo{objetivos: make(map[string]*entity.Objetivo)}
}

func (r *memObjetivoRepo) Create(o *entity.Objetivo) error {
	r.objetivos[o.ID] = o
	return nil
}

func (r *memObjetivoRepo) GetByID(id string) (*entity.Objetivo, error) {
	return r.objetivos[id], nil
}

func (r *memObjetivoRepo) ListByUser(userID string) ([]*entity.Objetivo, error) {
	var out []*entity.Objetivo
	for _, o := range r.objetivos {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prioridad > out[j].Prioridad })
	return out, nil
}

func (r *memObjetivoRepo) Update(o *entity.Objetivo) error {
	r.objetivos[o.ID] = o
	return nil
}

func (r *memObjetivoRepo) Delete(id string) error {
	delete(r.objetivos, id)
	return nil
}

func (r *memObjetivoRepo) AgregarAhorro(objetivoID string, monto decimal.Decimal) error {
	if o, ok := r.objetivos[objetivoID]; ok {
		o.AhorroActual = o.AhorroActual.Add(monto)
	}
	return nil
}

// RetirarAhorro emula el UPDATE condicional sobre el saldo.
func (r *memObjetivoRepo) RetirarAhorro(objetivoID string, monto decimal.Decimal) (bool, error) {
	o, ok := r.objetivos[objetivoID]
	if !ok || o.AhorroActual.LessThan(monto) {
		return false, nil
	}
	o.AhorroActual = o.AhorroActual.Sub(monto)
	return true, nil
}

func (r *memObjetivoRepo) CrearMovimiento(m *entity.ObjetivoMovimiento) error {
	r.movimientos = append(r.movimientos, m)
	return nil
}

func (r *memObjetivoRepo) ListMovimientos(objetivoID string, limit, offset int) ([]*entity.ObjetivoMovimiento, error) {
	var out []*entity.ObjetivoMovimiento
	for _, m := range r.movimientos {
		if m.ObjetivoID == objetivoID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── Proyectos ────────────────────────────────────────────────────────────────

type memProyectoRepo struct {
	proyectos map[string]*entity.Proyecto
	metas     map[string]*entity.ProyectoMeta
	gastos    []*entity.ProyectoGasto
}

func newMemProyectoRepo() *memProyectoRepo {
	return &memProyectoRepo{
		proyectos: make(map[string]*entity.Proyecto),
		metas:     make(map[string]*entity.ProyectoMeta),
	}
}

func (r *memProyectoRepo) Create(p *entity.Proyecto) error {
	r.proyectos[p.ID] = p
	return nil
}

func (r *memProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	return r.proyectos[id], nil
}

func (r *memProyectoRepo) ListByEmpresa(empresaID string) ([]*entity.Proyecto, error) {
	var out []*entity.Proyecto
	for _, p := range r.proyectos {
		if p.EmpresaID == empresaID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProyectoRepo) Update(p *entity.Proyecto) error {
	r.proyectos[p.ID] = p
	return nil
}

func (r *memProyectoRepo) Delete(id string) error {
	delete(r.proyectos, id)
	return nil
}

func (r *memProyectoRepo) CrearMeta(m *entity.ProyectoMeta) error {
	r.metas[m.ID] = m
	return nil
}

func (r *memProyectoRepo) GetMeta(metaID string) (*entity.ProyectoMeta, error) {
	return r.metas[metaID], nil
}

func (r *memProyectoRepo) UpdateMeta(m *entity.ProyectoMeta) error {
	r.metas[m.ID] = m
	return nil
}

func (r *memProyectoRepo) ListMetas(proyectoID string) ([]*entity.ProyectoMeta, error) {
	var out []*entity.ProyectoMeta
	for _, m := range r.metas {
		if m.ProyectoID == proyectoID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *memProyectoRepo) CrearGasto(g *entity.ProyectoGasto) error {
	r.gastos = append(r.gastos, g)
	return nil
}

func (r *memProyectoRepo) ListGastos(proyectoID string) ([]*entity.ProyectoGasto, error) {
	var out []*entity.ProyectoGasto
	for _, g := range r.gastos {
		if g.ProyectoID == proyectoID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memProyectoRepo) Estadisticas(empresaID string) (*repository.EstadisticasProyectos, error) {
	stats := &repository.EstadisticasProyectos{PorEstado: make(map[string]int)}
	var suma float64
	for _, p := range r.proyectos {
		if p.EmpresaID != empresaID {
			continue
		}
		stats.Total++
		stats.PorEstado[p.Estado.Codigo()]++
		suma += p.ProgresoPorcentaje
	}
	if stats.Total > 0 {
		stats.ProgresoPromedio = suma / float64(stats.Total)
	}
	return stats, nil
}

// ── Tareas ───────────────────────────────────────────────────────────────────

type memTareaRepo struct {
	tareas      map[string]*entity.TareaAsignada
	comentarios []*entity.TareaComentario
	historial   []*entity.TareaHistorial
}

func newMemTareaRepo() *memTareaRepo {
	return &memTareaRepo{tareas: make(map[string]*entity.TareaAsignada)}
}

func (r *memTareaRepo) Create(t *entity.TareaAsignada) error {
	r.tareas[t.ID] = t
	return nil
}

func (r *memTareaRepo) GetByID(id string) (*entity.TareaAsignada, error) {
	return r.tareas[id], nil
}

func (r *memTareaRepo) ListByEmpleado(empleadoID string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error) {
	var out []*entity.TareaAsignada
	for _, t := range r.tareas {
		if t.EmpleadoID != empleadoID {
			continue
		}
		if estado != nil && t.Estado != *estado {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memTareaRepo) ListByEmpresa(empresaID string, estado *entity.EstadoTarea) ([]*entity.TareaAsignada, error) {
	var out []*entity.TareaAsignada
	for _, t := range r.tareas {
		if t.EmpresaID != empresaID {
			continue
		}
		if estado != nil && t.Estado != *estado {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memTareaRepo) Update(t *entity.TareaAsignada) error {
	r.tareas[t.ID] = t
	return nil
}

func (r *memTareaRepo) CrearComentario(c *entity.TareaComentario) error {
	r.comentarios = append(r.comentarios, c)
	return nil
}

func (r *memTareaRepo) ListComentarios(tareaID string, incluirInternos bool) ([]*entity.TareaComentario, error) {
	var out []*entity.TareaComentario
	for _, c := range r.comentarios {
		if c.TareaID != tareaID {
			continue
		}
		if c.EsInterno && !incluirInternos {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memTareaRepo) CrearHistorial(h *entity.TareaHistorial) error {
	r.historial = append(r.historial, h)
	return nil
}

func (r *memTareaRepo) ListHistorial(tareaID string) ([]*entity.TareaHistorial, error) {
	var out []*entity.TareaHistorial
	for _, h := range r.historial {
		if h.TareaID == tareaID {
			out = append(out, h)
		}
	}
	return out, nil
}

// ── Productos y ventas ───────────────────────────────────────────────────────

type memProductoRepo struct {
	productos map[string]*entity.Producto
}

func newMemProductoRepo() *memProductoRepo {
	return &memProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (r *memProductoRepo) Create(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *memProductoRepo) ListByEmpresa(empresaID string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.EmpresaID == empresaID && p.Activo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *memProductoRepo) Delete(id string) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

// DescontarStock emula el UPDATE condicional sobre el stock.
func (r *memProductoRepo) DescontarStock(productoID string, cantidad int) (bool, error) {
	p, ok := r.productos[productoID]
	if !ok || p.Stock < cantidad {
		return false, nil
	}
	p.Stock -= cantidad
	return true, nil
}

type memVentaRepo struct {
	ventas []*entity.Venta
}

func newMemVentaRepo() *memVentaRepo { return &memVentaRepo{} }

func (r *memVentaRepo) Create(v *entity.Venta) error {
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *memVentaRepo) ListByEmpleado(empleadoID string, desde, hasta time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.EmpleadoID == empleadoID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVentaRepo) ListByEmpresa(empresaID string, desde, hasta time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.EmpresaID == empresaID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVentaRepo) ResumenEmpleado(empleadoID string, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	return r.resumen(func(v *entity.Venta) bool { return v.EmpleadoID == empleadoID })
}

func (r *memVentaRepo) ResumenEmpresa(empresaID string, desde, hasta time.Time) (*repository.ResumenVentas, error) {
	return r.resumen(func(v *entity.Venta) bool { return v.EmpresaID == empresaID })
}

func (r *memVentaRepo) resumen(match func(*entity.Venta) bool) (*repository.ResumenVentas, error) {
	res := &repository.ResumenVentas{MontoTotal: decimal.Zero, TicketPromedio: decimal.Zero}
	for _, v := range r.ventas {
		if !match(v) {
			continue
		}
		res.Conteo++
		res.UnidadesTotal += v.Cantidad
		res.MontoTotal = res.MontoTotal.Add(v.MontoTotal)
	}
	if res.Conteo > 0 {
		res.TicketPromedio = res.MontoTotal.Div(decimal.NewFromInt(int64(res.Conteo)))
	}
	return res, nil
}

// ── Transacciones ────────────────────────────────────────────────────────────

// memTx implementa los cinco runners transaccionales invocando el callback
// directamente sobre los repos en memoria.
type memTx struct {
	objetivoRepo *memObjetivoRepo
	planRepo     *memPlanRepo
	gastoRepo    *memGastoRepo
	productoRepo *memProductoRepo
	ventaRepo    *memVentaRepo
	proyectoRepo *memProyectoRepo
	tareaRepo    *memTareaRepo
}

var (
	_ usecase.ObjetivoTxRunner = (*memTx)(nil)
	_ usecase.PlanTxRunner     = (*memTx)(nil)
	_ usecase.VentaTxRunner    = (*memTx)(nil)
	_ usecase.ProyectoTxRunner = (*memTx)(nil)
	_ usecase.TareaTxRunner    = (*memTx)(nil)
)

func (t *memTx) RunObjetivo(ctx context.Context, fn func(repository.ObjetivoRepository) error) error {
	return fn(t.objetivoRepo)
}

func (t *memTx) RunPlan(ctx context.Context, fn func(repository.GastoPlanificadoRepository, repository.GastoRepository) error) error {
	return fn(t.planRepo, t.gastoRepo)
}

func (t *memTx) RunVenta(ctx context.Context, fn func(repository.ProductoRepository, repository.VentaRepository) error) error {
	return fn(t.productoRepo, t.ventaRepo)
}

func (t *memTx) RunProyecto(ctx context.Context, fn func(repository.ProyectoRepository) error) error {
	return fn(t.proyectoRepo)
}

func (t *memTx) RunTarea(ctx context.Context, fn func(repository.TareaRepository) error) error {
	return fn(t.tareaRepo)
}

// ── Panel admin ──────────────────────────────────────────────────────────────

// memAdminRepo agregados configurables; el listado por rol filtra sobre el
// repo de usuarios compartido.
type memAdminRepo struct {
	users     *memUserRepo
	stats     repository.EstadisticasGlobales
	resumen   repository.ResumenPlataforma
	actividad repository.ActividadEmpresa
	ingresos  decimal.Decimal
	gastos    decimal.Decimal
}

func newMemAdminRepo(users *memUserRepo) *memAdminRepo {
	return &memAdminRepo{users: users}
}

func (r *memAdminRepo) GetEstadisticasGlobales(ctx context.Context) (*repository.EstadisticasGlobales, error) {
	stats := r.stats
	return &stats, nil
}

func (r *memAdminRepo) GetResumenPlataforma(ctx context.Context, mes, anio int) (*repository.ResumenPlataforma, error) {
	res := r.resumen
	return &res, nil
}

func (r *memAdminRepo) GetBalanceUsuario(ctx context.Context, userID string) (decimal.Decimal, decimal.Decimal, error) {
	return r.ingresos, r.gastos, nil
}

func (r *memAdminRepo) GetActividadEmpresa(ctx context.Context, empresaID string) (*repository.ActividadEmpresa, error) {
	act := r.actividad
	return &act, nil
}

func (r *memAdminRepo) ListUsuariosPorRol(ctx context.Context, rol entity.Rol, search string, activo *bool, limit, offset int) ([]*entity.User, int, error) {
	var filtrados []*entity.User
	for _, u := range r.users.users {
		if u.Rol != rol {
			continue
		}
		if activo != nil && u.IsActive != *activo {
			continue
		}
		if search != "" {
			s := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(u.Username), s) &&
				!strings.Contains(strings.ToLower(u.Email), s) &&
				!strings.Contains(strings.ToLower(u.FirstName), s) &&
				!strings.Contains(strings.ToLower(u.LastName), s) {
				continue
			}
		}
		filtrados = append(filtrados, u)
	}
	sort.Slice(filtrados, func(i, j int) bool {
		return filtrados[i].CreatedAt.After(filtrados[j].CreatedAt)
	})
	total := len(filtrados)
	if offset >= len(filtrados) {
		return nil, total, nil
	}
	filtrados = filtrados[offset:]
	if limit < len(filtrados) {
		filtrados = filtrados[:limit]
	}
	return filtrados, total, nil
}

type memAuditoriaRepo struct {
	registros []*entity.RegistroAuditoria
	errCreate error
}

func (r *memAuditoriaRepo) Create(reg *entity.RegistroAuditoria) error {
	if r.errCreate != nil {
		return r.errCreate
	}
	r.registros = append(r.registros, reg)
	return nil
}

func (r *memAuditoriaRepo) ListRecientes(limit int) ([]*entity.RegistroAuditoria, error) {
	out := make([]*entity.RegistroAuditoria, len(r.registros))
	copy(out, r.registros)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memConfigRepo struct {
	valores map[string]string
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{valores: make(map[string]string)}
}

func (r *memConfigRepo) GetAll() ([]entity.Configuracion, error) {
	var out []entity.Configuracion
	for clave, valor := range r.valores {
		out = append(out, entity.Configuracion{Clave: clave, Valor: valor})
	}
	return out, nil
}

func (r *memConfigRepo) Upsert(clave, valor string) error {
	r.valores[clave] = valor
	return nil
}

// testLogger logger silencioso para los tests.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}
