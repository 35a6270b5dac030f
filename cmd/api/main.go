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

	"github.com/jmcastro/textil-api/internal/application/auth"
	"github.com/jmcastro/textil-api/internal/application/catalogo"
	"github.com/jmcastro/textil-api/internal/application/export"
	"github.com/jmcastro/textil-api/internal/application/inventory"
	"github.com/jmcastro/textil-api/internal/application/produccion"
	infrapdf "github.com/jmcastro/textil-api/internal/infrastructure/pdf"
	"github.com/jmcastro/textil-api/internal/infrastructure/postgres"
	httpRouter "github.com/jmcastro/textil-api/internal/interfaces/http"
	"github.com/jmcastro/textil-api/pkg/config"
	"github.com/jmcastro/textil-api/pkg/logger"
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

	articuloRepo := postgres.NewArticuloRepository(pool)
	ingresoRepo := postgres.NewIngresoRepository(pool)
	salidaRepo := postgres.NewSalidaRepository(pool)
	ajusteRepo := postgres.NewAjusteRepository(pool)
	rolloRepo := postgres.NewRolloRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	modeloRepo := postgres.NewModeloRepository(pool)
	registroRepo := postgres.NewRegistroRepository(pool)
	movimientoRepo := postgres.NewMovimientoServicioRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reservasUC := inventory.NewReservasUseCase(articuloRepo, registroRepo, ingresoRepo, cfg.Produccion.EstadosTerminales)
	articuloUC := inventory.NewArticuloUseCase(articuloRepo, ingresoRepo, rolloRepo, reservasUC)
	alertasUC := inventory.NewAlertasUseCase(articuloRepo)
	ingresoUC := inventory.NewRegistrarIngresoUseCase(txRunner, articuloRepo)
	salidaUC := inventory.NewRegistrarSalidaUseCase(txRunner, articuloRepo, registroRepo, salidaRepo)
	ajusteUC := inventory.NewRegistrarAjusteUseCase(txRunner, articuloRepo, ajusteRepo)

	catalogoUC := catalogo.NewUseCase(catalogoRepo)
	modeloUC := produccion.NewModeloUseCase(modeloRepo, articuloRepo, catalogoRepo)
	registroUC := produccion.NewRegistroUseCase(registroRepo, modeloRepo)
	movimientoUC := produccion.NewMovimientoUseCase(movimientoRepo, registroRepo)
	ordenCorteUC := produccion.NewOrdenCorteUseCase(registroRepo, modeloRepo, articuloRepo, infrapdf.NewOrdenCorteGenerator())

	exportUC := export.NewUseCase(articuloRepo, ingresoRepo, salidaRepo, ajusteRepo, registroRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Textil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogoUC:   catalogoUC,
		ArticuloUC:   articuloUC,
		ReservasUC:   reservasUC,
		AlertasUC:    alertasUC,
		IngresoUC:    ingresoUC,
		SalidaUC:     salidaUC,
		AjusteUC:     ajusteUC,
		ModeloUC:     modeloUC,
		RegistroUC:   registroUC,
		MovimientoUC: movimientoUC,
		OrdenCorteUC: ordenCorteUC,
		ExportUC:     exportUC,
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
