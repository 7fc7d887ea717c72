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

	"github.com/Francoamora/munifinanzas-sub000/internal/application/agenda"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/auth"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/flota"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/social"
	infrapdf "github.com/Francoamora/munifinanzas-sub000/internal/infrastructure/pdf"
	"github.com/Francoamora/munifinanzas-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Francoamora/munifinanzas-sub000/internal/interfaces/http"
	"github.com/Francoamora/munifinanzas-sub000/pkg/config"
	"github.com/Francoamora/munifinanzas-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	insumoRepo := postgres.NewInsumoRepository(pool)
	categoriaInsumoRepo := postgres.NewCategoriaInsumoRepository(pool)
	movStockRepo := postgres.NewMovimientoStockRepository(pool)
	prestamoRepo := postgres.NewPrestamoRepository(pool)
	ordenRepo := postgres.NewOrdenRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	beneficiarioRepo := postgres.NewBeneficiarioRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	vehiculoRepo := postgres.NewVehiculoRepository(pool)
	hojaRutaRepo := postgres.NewHojaRutaRepository(pool)
	tareaRepo := postgres.NewTareaRepository(pool)
	atencionRepo := postgres.NewAtencionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	capacidades := finanzas.CapacidadesPorRol{}

	registrarUC := inventario.NewRegistrarMovimientoUseCase(txRunner, insumoRepo)
	insumoUC := inventario.NewInsumoUseCase(insumoRepo, movStockRepo, categoriaInsumoRepo)
	prestamoUC := inventario.NewPrestamoUseCase(txRunner, insumoRepo, prestamoRepo, beneficiarioRepo)

	ordenUC := finanzas.NewOrdenUseCase(txRunner, ordenRepo, proveedorRepo, capacidades)
	movimientoUC := finanzas.NewMovimientoUseCase(movimientoRepo, categoriaRepo, proveedorRepo, beneficiarioRepo, capacidades)
	catalogoUC := finanzas.NewCategoriaUseCase(categoriaRepo, areaRepo)
	dashboardUC := finanzas.NewDashboardUseCase(movimientoRepo, ordenRepo, prestamoRepo, tareaRepo, insumoRepo)

	// PDF: orden imprimible con firmas
	pdfGenerator := infrapdf.NewMarotoOrdenGenerator(cfg.App.Name)
	ordenPDFUC := finanzas.NewPDFUseCase(ordenRepo, categoriaRepo, areaRepo, beneficiarioRepo, pdfGenerator)

	padronUC := social.NewPadronUseCase(beneficiarioRepo, proveedorRepo)
	atencionUC := social.NewAtencionUseCase(atencionRepo, beneficiarioRepo)
	flotaUC := flota.NewFlotaUseCase(vehiculoRepo, hojaRutaRepo)
	agendaUC := agenda.NewTareaUseCase(tareaRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "MuniFinanzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InsumoUC:     insumoUC,
		RegistrarUC:  registrarUC,
		PrestamoUC:   prestamoUC,
		OrdenUC:      ordenUC,
		OrdenPDFUC:   ordenPDFUC,
		MovimientoUC: movimientoUC,
		CatalogoUC:   catalogoUC,
		DashboardUC:  dashboardUC,
		PadronUC:     padronUC,
		AtencionUC:   atencionUC,
		FlotaUC:      flotaUC,
		AgendaUC:     agendaUC,
		JWTSecret:    cfg.JWT.Secret,
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
