package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aureum-app/aureum-api/internal/application/auth"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
	infrapdf "github.com/aureum-app/aureum-api/internal/infrastructure/pdf"
	"github.com/aureum-app/aureum-api/internal/infrastructure/postgres"
	httpRouter "github.com/aureum-app/aureum-api/internal/interfaces/http"
	"github.com/aureum-app/aureum-api/pkg/config"
	"github.com/aureum-app/aureum-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	planRepo := postgres.NewGastoPlanificadoRepository(pool)
	ingresoRepo := postgres.NewIngresoRepository(pool)
	objetivoRepo := postgres.NewObjetivoRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	tareaRepo := postgres.NewTareaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	presupuestoRepo := postgres.NewPresupuestoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	configRepo := postgres.NewConfiguracionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	empresaUC := usecase.NewEmpresaUseCase(userRepo)
	gastoUC := usecase.NewGastoUseCase(
		gastoRepo, planRepo, categoriaRepo, userRepo, presupuestoRepo,
		txRunner, cfg.Aprobacion.UmbralAutoAprobacion, log,
	)
	ingresoUC := usecase.NewIngresoUseCase(ingresoRepo, categoriaRepo)
	objetivoUC := usecase.NewObjetivoUseCase(objetivoRepo, txRunner)
	facturaUC := usecase.NewFacturaUseCase(facturaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	presupuestoUC := usecase.NewPresupuestoUseCase(presupuestoRepo, categoriaRepo)
	proyectoUC := usecase.NewProyectoUseCase(proyectoRepo, txRunner)
	tareaUC := usecase.NewTareaUseCase(tareaRepo, userRepo, txRunner)
	ventaUC := usecase.NewVentaUseCase(productoRepo, ventaRepo, userRepo, txRunner)

	// PDF: reporte financiero mensual
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	dashboardUC := usecase.NewDashboardUseCase(
		dashboardRepo, objetivoRepo, facturaRepo, gastoRepo, userRepo, pdfGenerator,
	)
	adminUC := usecase.NewAdminUseCase(
		adminRepo, userRepo, auditoriaRepo, configRepo, ventaRepo, tareaRepo, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Aureum API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EmpresaUC:     empresaUC,
		GastoUC:       gastoUC,
		IngresoUC:     ingresoUC,
		ObjetivoUC:    objetivoUC,
		FacturaUC:     facturaUC,
		CategoriaUC:   categoriaUC,
		PresupuestoUC: presupuestoUC,
		ProyectoUC:    proyectoUC,
		TareaUC:       tareaUC,
		VentaUC:       ventaUC,
		DashboardUC:   dashboardUC,
		AdminUC:       adminUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
