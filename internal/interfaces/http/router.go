package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/auth"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EmpresaUC     *usecase.EmpresaUseCase
	GastoUC       *usecase.GastoUseCase
	IngresoUC     *usecase.IngresoUseCase
	ObjetivoUC    *usecase.ObjetivoUseCase
	FacturaUC     *usecase.FacturaUseCase
	CategoriaUC   *usecase.CategoriaUseCase
	PresupuestoUC *usecase.PresupuestoUseCase
	ProyectoUC    *usecase.ProyectoUseCase
	TareaUC       *usecase.TareaUseCase
	VentaUC       *usecase.VentaUseCase
	DashboardUC   *usecase.DashboardUseCase
	AdminUC       *usecase.AdminUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público + perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.Perfil)
	authGroup.Put("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.ActualizarPerfil)

	// Módulo financiero personal (cualquier cuenta autenticada)
	financial := api.Group("/v1/financial", AuthMiddleware(deps.JWTSecret))

	gastoHandler := NewGastoHandler(deps.GastoUC)
	financial.Post("/gastos", gastoHandler.Crear)
	financial.Get("/gastos", gastoHandler.Listar)
	financial.Get("/gastos/resumen", gastoHandler.Resumen)
	financial.Delete("/gastos/:id", gastoHandler.Eliminar)

	financial.Post("/gastos-planificados", gastoHandler.CrearPlan)
	financial.Get("/gastos-planificados", gastoHandler.ListarPlanes)
	financial.Post("/gastos-planificados/:id/ejecutar", gastoHandler.EjecutarPlan)
	financial.Post("/gastos-planificados/:id/cancelar", gastoHandler.CancelarPlan)

	ingresoHandler := NewIngresoHandler(deps.IngresoUC)
	financial.Post("/ingresos", ingresoHandler.Crear)
	financial.Get("/ingresos", ingresoHandler.Listar)
	financial.Get("/ingresos/total", ingresoHandler.Total)
	financial.Delete("/ingresos/:id", ingresoHandler.Eliminar)

	objetivoHandler := NewObjetivoHandler(deps.ObjetivoUC)
	financial.Post("/objetivos", objetivoHandler.Crear)
	financial.Get("/objetivos", objetivoHandler.Listar)
	financial.Get("/objetivos/resumen", objetivoHandler.Resumen)
	financial.Post("/objetivos/:id/agregar", objetivoHandler.Agregar)
	financial.Post("/objetivos/:id/retirar", objetivoHandler.Retirar)
	financial.Get("/objetivos/:id/historial", objetivoHandler.Historial)
	financial.Delete("/objetivos/:id", objetivoHandler.Eliminar)

	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	financial.Post("/facturas", facturaHandler.Crear)
	financial.Get("/facturas", facturaHandler.Listar)
	financial.Get("/facturas/resumen", facturaHandler.Resumen)
	financial.Post("/facturas/:id/pagar", facturaHandler.Pagar)
	financial.Delete("/facturas/:id", facturaHandler.Eliminar)

	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	financial.Post("/categorias", categoriaHandler.Crear)
	financial.Get("/categorias", categoriaHandler.Listar)
	financial.Delete("/categorias/:id", categoriaHandler.Eliminar)

	presupuestoHandler := NewPresupuestoHandler(deps.PresupuestoUC)
	financial.Post("/presupuestos", presupuestoHandler.Crear)
	financial.Get("/presupuestos", presupuestoHandler.Listar)
	financial.Put("/presupuestos/:id", presupuestoHandler.ActualizarLimite)
	financial.Delete("/presupuestos/:id", presupuestoHandler.Eliminar)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	financial.Get("/dashboard", dashboardHandler.Resumen)
	financial.Get("/reporte/pdf", dashboardHandler.ReportePDF)

	// Módulo empresa (rol empresa)
	empresa := api.Group("/empresa", AuthMiddleware(deps.JWTSecret), RequireRole("empresa", "admin"))

	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresa.Post("/empleados", empresaHandler.CrearEmpleado)
	empresa.Get("/empleados", empresaHandler.ListarEmpleados)
	empresa.Get("/empleados/:id", empresaHandler.ObtenerEmpleado)
	empresa.Delete("/empleados/:id", empresaHandler.DesactivarEmpleado)
	empresa.Post("/empleados/:id/reactivar", empresaHandler.ReactivarEmpleado)

	empresa.Get("/gastos/pendientes", gastoHandler.Pendientes)
	empresa.Post("/gastos/:id/aprobar", gastoHandler.Aprobar)
	empresa.Post("/gastos/:id/rechazar", gastoHandler.Rechazar)

	ventaHandler := NewVentaHandler(deps.VentaUC)
	empresa.Post("/productos", ventaHandler.CrearProducto)
	empresa.Get("/productos", ventaHandler.ListarProductos)
	empresa.Put("/productos/:id", ventaHandler.ActualizarProducto)
	empresa.Delete("/productos/:id", ventaHandler.EliminarProducto)
	empresa.Get("/ventas", ventaHandler.VentasEmpresa)
	empresa.Get("/ventas/resumen", ventaHandler.ResumenEmpresa)

	// Módulo empleado (rol empleado)
	empleado := api.Group("/empleado", AuthMiddleware(deps.JWTSecret), RequireRole("empleado"))
	empleado.Post("/gastos", gastoHandler.CrearComoEmpleado)
	empleado.Get("/gastos", gastoHandler.ListarComoEmpleado)
	empleado.Post("/ventas", ventaHandler.RegistrarVenta)
	empleado.Get("/ventas", ventaHandler.VentasEmpleado)
	empleado.Get("/ventas/resumen", ventaHandler.ResumenEmpleado)

	// Tareas (empresa y empleado comparten el prefijo; el use case resuelve
	// visibilidad por actor)
	tareas := api.Group("/tareas", AuthMiddleware(deps.JWTSecret))
	tareaHandler := NewTareaHandler(deps.TareaUC)
	tareas.Post("/", RequireRole("empresa", "admin"), tareaHandler.Crear)
	tareas.Get("/empresa", RequireRole("empresa", "admin"), tareaHandler.ListarEmpresa)
	tareas.Get("/empresa/estadisticas", RequireRole("empresa", "admin"), tareaHandler.EstadisticasEmpresa)
	tareas.Get("/mias", RequireRole("empleado"), tareaHandler.ListarEmpleado)
	tareas.Get("/mias/estadisticas", RequireRole("empleado"), tareaHandler.EstadisticasEmpleado)
	tareas.Put("/:id/estado", tareaHandler.CambiarEstado)
	tareas.Post("/:id/comentarios", tareaHandler.Comentar)
	tareas.Get("/:id/comentarios", tareaHandler.Comentarios)
	tareas.Get("/:id/historial", tareaHandler.Historial)

	// Proyectos (rol empresa)
	proyectos := api.Group("/proyectos", AuthMiddleware(deps.JWTSecret), RequireRole("empresa", "admin"))
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	proyectos.Post("/", proyectoHandler.Crear)
	proyectos.Get("/", proyectoHandler.Listar)
	proyectos.Get("/estadisticas", proyectoHandler.Estadisticas)
	proyectos.Get("/:id", proyectoHandler.Obtener)
	proyectos.Put("/:id", proyectoHandler.Actualizar)
	proyectos.Delete("/:id", proyectoHandler.Eliminar)
	proyectos.Post("/:id/metas", proyectoHandler.AgregarMeta)
	proyectos.Get("/:id/metas", proyectoHandler.ListarMetas)
	proyectos.Post("/:id/metas/:metaId/completar", proyectoHandler.CompletarMeta)
	proyectos.Post("/:id/metas/:metaId/reabrir", proyectoHandler.ReabrirMeta)
	proyectos.Post("/:id/gastos", proyectoHandler.RegistrarGasto)
	proyectos.Get("/:id/gastos", proyectoHandler.ListarGastos)

	// Panel de administración (solo rol admin)
	admin := api.Group("/v1/admin", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/stats", adminHandler.Estadisticas)
	admin.Get("/actividad-reciente", adminHandler.ActividadReciente)
	admin.Get("/usuarios", adminHandler.ListarUsuarios)
	admin.Post("/usuarios", adminHandler.CrearUsuario)
	admin.Get("/usuarios/:id", adminHandler.ObtenerUsuario)
	admin.Put("/usuarios/:id", adminHandler.ActualizarUsuario)
	admin.Put("/usuarios/:id/estado", adminHandler.CambiarEstadoUsuario)
	admin.Get("/usuarios/:id/balance", adminHandler.BalanceUsuario)
	admin.Get("/empresas", adminHandler.ListarEmpresas)
	admin.Get("/empresas/:id", adminHandler.DetalleEmpresa)
	admin.Get("/empresas/:id/empleados", adminHandler.EmpleadosEmpresa)
	admin.Delete("/empresas/:id/empleados/:empleadoId", adminHandler.DesvincularEmpleado)
	admin.Get("/empresas/:id/ventas", adminHandler.VentasEmpresa)
	admin.Get("/empresas/:id/tareas", adminHandler.TareasEmpresa)
	admin.Get("/reportes/resumen", adminHandler.ResumenReportes)
	admin.Get("/configuracion", adminHandler.ObtenerConfiguracion)
	admin.Put("/configuracion", adminHandler.ActualizarConfiguracion)
}
