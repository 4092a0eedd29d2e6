package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aureum-app/aureum-api/internal/application/auth"
	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
	"github.com/aureum-app/aureum-api/pkg/logger"
)

// Configuraciones con valor por defecto cuando no hay fila persistida.
var configuracionPorDefecto = map[string]string{
	"session_timeout_minutes":    "60",
	"enable_email_notifications": "true",
}

// AdminUseCase operaciones del panel de administración: estadísticas de la
// plataforma, gestión de cuentas, supervisión de empresas y configuración.
// Toda acción que modifica cuentas queda en el registro de auditoría.
type AdminUseCase struct {
	adminRepo     repository.AdminRepository
	userRepo      repository.UserRepository
	auditoriaRepo repository.AuditoriaRepository
	configRepo    repository.ConfiguracionRepository
	ventaRepo     repository.VentaRepository
	tareaRepo     repository.TareaRepository
	log           *logger.Logger
}

// NewAdminUseCase construye el caso de uso del panel admin.
func NewAdminUseCase(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	auditoriaRepo repository.AuditoriaRepository,
	configRepo repository.ConfiguracionRepository,
	ventaRepo repository.VentaRepository,
	tareaRepo repository.TareaRepository,
	log *logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		adminRepo:     adminRepo,
		userRepo:      userRepo,
		auditoriaRepo: auditoriaRepo,
		configRepo:    configRepo,
		ventaRepo:     ventaRepo,
		tareaRepo:     tareaRepo,
		log:           log,
	}
}

// ── Panel general ────────────────────────────────────────────────────────────

// Estadisticas totales de la plataforma para el dashboard del administrador.
func (uc *AdminUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasAdminResponse, error) {
	stats, err := uc.adminRepo.GetEstadisticasGlobales(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasAdminResponse{
		TotalUsuarios: stats.TotalUsuarios,
		TotalIngresos: stats.TotalIngresos,
		TotalGastos:   stats.TotalGastos,
		BalanceTotal:  stats.TotalIngresos.Sub(stats.TotalGastos),
	}, nil
}

// ActividadReciente últimas entradas del registro de auditoría con el email
// del administrador que ejecutó cada acción.
func (uc *AdminUseCase) ActividadReciente() ([]*dto.ActividadRecienteResponse, error) {
	registros, err := uc.auditoriaRepo.ListRecientes(5)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActividadRecienteResponse, 0, len(registros))
	for _, reg := range registros {
		email := ""
		if actor, err := uc.userRepo.GetByID(reg.UserID); err == nil && actor != nil {
			email = actor.Email
		}
		out = append(out, &dto.ActividadRecienteResponse{
			Email:    email,
			Accion:   reg.Accion,
			Detalles: reg.Detalles,
			Fecha:    reg.CreatedAt,
		})
	}
	return out, nil
}

// ResumenReportes corte del mes en curso para la vista de reportes.
func (uc *AdminUseCase) ResumenReportes(ctx context.Context) (*dto.ResumenPlataformaResponse, error) {
	ahora := time.Now()
	res, err := uc.adminRepo.GetResumenPlataforma(ctx, int(ahora.Month()), ahora.Year())
	if err != nil {
		return nil, err
	}
	return &dto.ResumenPlataformaResponse{
		NuevosUsuariosMes:    res.NuevosUsuariosMes,
		TotalIngresos:        res.TotalIngresos,
		TotalGastos:          res.TotalGastos,
		CuentasInhabilitadas: res.CuentasInhabilitadas,
	}, nil
}

// ── Gestión de usuarios ──────────────────────────────────────────────────────

// ListarUsuarios página de cuentas personales con búsqueda y filtro de estado.
func (uc *AdminUseCase) ListarUsuarios(ctx context.Context, in dto.ListarUsuariosAdminRequest) (*dto.UsuariosPaginadosResponse, error) {
	in.DefaultPage()
	var activo *bool
	switch in.Estado {
	case "activo":
		v := true
		activo = &v
	case "inactivo":
		v := false
		activo = &v
	case "":
	default:
		return nil, domain.ErrInvalidInput
	}

	users, total, err := uc.adminRepo.ListUsuariosPorRol(ctx, entity.RolUsuario, in.Search, activo, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.UsuariosPaginadosResponse{
		Usuarios: toUserResponses(users),
		Page:     dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ObtenerUsuario detalle de cualquier cuenta.
func (uc *AdminUseCase) ObtenerUsuario(userID string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(u), nil
}

// CrearUsuario alta de cuenta desde el panel. El username se deriva del email
// y la cuenta nace verificada (la creó un administrador).
func (uc *AdminUseCase) CrearUsuario(adminID string, in dto.CrearUsuarioAdminRequest) (*dto.UserResponse, error) {
	rol := entity.Rol(in.RolID)
	if in.RolID == 0 {
		rol = entity.RolUsuario
	}
	if !rol.Valido() {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.SplitN(in.Email, "@", 2)[0],
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Rol:          rol,
		IsActive:     true,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, err
	}
	uc.registrarAuditoria(adminID, entity.AuditoriaUsuarioCreado, "User", u.ID,
		map[string]any{"email": u.Email, "rol": rol.Codigo()})
	return auth.ToUserResponse(u), nil
}

// ActualizarUsuario cambios parciales de nombre y rol sobre una cuenta.
func (uc *AdminUseCase) ActualizarUsuario(adminID, userID string, in dto.ActualizarUsuarioAdminRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.RolID != nil {
		rol := entity.Rol(*in.RolID)
		if !rol.Valido() {
			return nil, domain.ErrInvalidInput
		}
		u.Rol = rol
	}
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	uc.registrarAuditoria(adminID, entity.AuditoriaUsuarioActualizado, "User", u.ID, nil)
	return auth.ToUserResponse(u), nil
}

// CambiarEstadoUsuario habilita o inhabilita una cuenta y deja rastro en la
// auditoría con el estado anterior.
func (uc *AdminUseCase) CambiarEstadoUsuario(adminID, userID string, in dto.CambiarEstadoUsuarioRequest) error {
	if in.Activo == nil {
		return domain.ErrInvalidInput
	}
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	anterior := u.IsActive
	if anterior == *in.Activo {
		return nil
	}
	u.IsActive = *in.Activo
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return err
	}
	uc.registrarAuditoria(adminID, entity.AuditoriaEstadoUsuarioCambiado, "User", u.ID,
		map[string]any{"estado_anterior": anterior, "estado_nuevo": *in.Activo})
	return nil
}

// BalanceUsuario balance histórico de una cuenta (ingresos, gastos, neto).
func (uc *AdminUseCase) BalanceUsuario(ctx context.Context, userID string) (*dto.BalanceUsuarioResponse, error) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	ingresos, gastos, err := uc.adminRepo.GetBalanceUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceUsuarioResponse{
		Usuario:       auth.ToUserResponse(u),
		TotalIngresos: ingresos,
		TotalGastos:   gastos,
		BalanceNeto:   ingresos.Sub(gastos),
	}, nil
}

// ── Supervisión de empresas ──────────────────────────────────────────────────

// ListarEmpresas página de cuentas empresa.
func (uc *AdminUseCase) ListarEmpresas(ctx context.Context, page dto.PageRequest) (*dto.UsuariosPaginadosResponse, error) {
	page.DefaultPage()
	empresas, total, err := uc.adminRepo.ListUsuariosPorRol(ctx, entity.RolEmpresa, "", nil, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.UsuariosPaginadosResponse{
		Usuarios: toUserResponses(empresas),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// DetalleEmpresa ficha de la empresa con conteos de actividad.
func (uc *AdminUseCase) DetalleEmpresa(ctx context.Context, empresaID string) (*dto.EmpresaDetalleResponse, error) {
	empresa, err := uc.empresa(empresaID)
	if err != nil {
		return nil, err
	}
	act, err := uc.adminRepo.GetActividadEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	return &dto.EmpresaDetalleResponse{
		Empresa:           auth.ToUserResponse(empresa),
		Empleados:         act.Empleados,
		Proyectos:         act.Proyectos,
		TareasCompletadas: act.TareasCompletadas,
	}, nil
}

// EmpleadosEmpresa empleados dados de alta por la empresa.
func (uc *AdminUseCase) EmpleadosEmpresa(empresaID string, page dto.PageRequest) ([]*dto.UserResponse, error) {
	if _, err := uc.empresa(empresaID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	empleados, err := uc.userRepo.ListEmpleados(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toUserResponses(empleados), nil
}

// DesvincularEmpleado quita el vínculo empleado-empresa conservando la cuenta
// y su historial. El UPDATE condicional evita desvincular empleados ajenos.
func (uc *AdminUseCase) DesvincularEmpleado(adminID, empresaID, empleadoID string) error {
	ok, err := uc.userRepo.DesvincularEmpleado(empresaID, empleadoID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	uc.registrarAuditoria(adminID, entity.AuditoriaEmpleadoDesvinculado, "User", empleadoID,
		map[string]any{"empresa_id": empresaID})
	return nil
}

// VentasEmpresa ventas de la empresa vistas desde el panel admin.
func (uc *AdminUseCase) VentasEmpresa(empresaID string) ([]*dto.VentaResponse, error) {
	if _, err := uc.empresa(empresaID); err != nil {
		return nil, err
	}
	d, h := rangoPorDefecto(nil, nil)
	ventas, err := uc.ventaRepo.ListByEmpresa(empresaID, d, h)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(ventas), nil
}

// TareasEmpresa tareas asignadas por la empresa, en cualquier estado.
func (uc *AdminUseCase) TareasEmpresa(empresaID string) ([]*dto.TareaResponse, error) {
	if _, err := uc.empresa(empresaID); err != nil {
		return nil, err
	}
	tareas, err := uc.tareaRepo.ListByEmpresa(empresaID, nil)
	if err != nil {
		return nil, err
	}
	return toTareaResponses(tareas), nil
}

// ── Configuración del sistema ────────────────────────────────────────────────

// ObtenerConfiguracion valores persistidos superpuestos a los defaults.
func (uc *AdminUseCase) ObtenerConfiguracion() (map[string]string, error) {
	out := make(map[string]string, len(configuracionPorDefecto))
	for clave, valor := range configuracionPorDefecto {
		out[clave] = valor
	}
	persistidas, err := uc.configRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, c := range persistidas {
		out[c.Clave] = c.Valor
	}
	return out, nil
}

// ActualizarConfiguracion guarda cada par clave/valor y audita el cambio.
func (uc *AdminUseCase) ActualizarConfiguracion(adminID string, in dto.ActualizarConfiguracionRequest) error {
	if len(in.Valores) == 0 {
		return domain.ErrInvalidInput
	}
	for clave, valor := range in.Valores {
		if err := uc.configRepo.Upsert(clave, valor); err != nil {
			return err
		}
	}
	detalles := make(map[string]any, len(in.Valores))
	for clave, valor := range in.Valores {
		detalles[clave] = valor
	}
	uc.registrarAuditoria(adminID, entity.AuditoriaConfigActualizada, "", "", detalles)
	return nil
}

// registrarAuditoria inserta la entrada de auditoría. Es de mejor esfuerzo:
// un fallo se registra en el log y no revierte la acción ya aplicada.
func (uc *AdminUseCase) registrarAuditoria(adminID, accion, targetTipo, targetID string, detalles map[string]any) {
	serializados := ""
	if detalles != nil {
		if b, err := json.Marshal(detalles); err == nil {
			serializados = string(b)
		}
	}
	err := uc.auditoriaRepo.Create(&entity.RegistroAuditoria{
		ID:         uuid.New().String(),
		UserID:     adminID,
		Accion:     accion,
		TargetTipo: targetTipo,
		TargetID:   targetID,
		Detalles:   serializados,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("accion", accion).Msg("no se pudo registrar la auditoría")
	}
}

func (uc *AdminUseCase) empresa(empresaID string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Rol != entity.RolEmpresa {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func toUserResponses(users []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out
}
