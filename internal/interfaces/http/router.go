package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/auth"
	"github.com/jmcastro/textil-api/internal/application/catalogo"
	"github.com/jmcastro/textil-api/internal/application/export"
	"github.com/jmcastro/textil-api/internal/application/inventory"
	"github.com/jmcastro/textil-api/internal/application/produccion"
	"github.com/jmcastro/textil-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	CatalogoUC   *catalogo.UseCase
	ArticuloUC   *inventory.ArticuloUseCase
	ReservasUC   *inventory.ReservasUseCase
	AlertasUC    *inventory.AlertasUseCase
	IngresoUC    *inventory.RegistrarIngresoUseCase
	SalidaUC     *inventory.RegistrarSalidaUseCase
	AjusteUC     *inventory.RegistrarAjusteUseCase
	ModeloUC     *produccion.ModeloUseCase
	RegistroUC   *produccion.RegistroUseCase
	MovimientoUC *produccion.MovimientoUseCase
	OrdenCorteUC *produccion.OrdenCorteUseCase
	ExportUC     *export.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; /me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escriben stock: solo admin y almacenista. El cortador consulta.
	almacen := RequireRol(entity.RolAdmin, entity.RolAlmacenista)
	soloAdmin := RequireRol(entity.RolAdmin)

	// Catálogos (protegido; escritura solo admin)
	catalogos := protected.Group("/catalogos")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogos.Get("/:tipo", catalogoHandler.List)
	catalogos.Post("/:tipo", soloAdmin, catalogoHandler.Create)
	catalogos.Put("/:tipo/:id", soloAdmin, catalogoHandler.Update)
	catalogos.Delete("/:tipo/:id", soloAdmin, catalogoHandler.Delete)

	// Artículos (protegido)
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC, deps.ReservasUC, deps.AlertasUC)
	articulos.Post("/", almacen, articuloHandler.Create)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetDetalle)
	articulos.Put("/:id", almacen, articuloHandler.Update)
	articulos.Get("/:id/reservas", articuloHandler.Reservas)
	articulos.Get("/:id/cuadre", articuloHandler.Cuadre)

	// Inventario (protegido; escritura de almacén)
	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.IngresoUC, deps.SalidaUC, deps.AjusteUC)
	invGroup.Get("/alertas", articuloHandler.Alertas)
	invGroup.Post("/ingresos", almacen, inventarioHandler.RegistrarIngreso)
	invGroup.Post("/salidas", almacen, inventarioHandler.RegistrarSalida)
	invGroup.Get("/salidas", inventarioHandler.ListSalidas)
	invGroup.Post("/ajustes", almacen, inventarioHandler.RegistrarAjuste)
	invGroup.Get("/ajustes", inventarioHandler.ListAjustes)

	// Modelos (protegido)
	modelos := protected.Group("/modelos")
	modeloHandler := NewModeloHandler(deps.ModeloUC)
	modelos.Post("/", almacen, modeloHandler.Create)
	modelos.Get("/", modeloHandler.List)
	modelos.Get("/:id", modeloHandler.GetByID)
	modelos.Put("/:id", almacen, modeloHandler.Update)

	// Registros de producción (protegido; el cortador también crea y avanza)
	produccionRol := RequireRol(entity.RolAdmin, entity.RolAlmacenista, entity.RolCortador)
	registros := protected.Group("/registros")
	registroHandler := NewRegistroHandler(deps.RegistroUC, deps.OrdenCorteUC)
	registros.Post("/", produccionRol, registroHandler.Create)
	registros.Get("/", registroHandler.List)
	registros.Get("/:id", registroHandler.GetByID)
	registros.Put("/:id/estado", produccionRol, registroHandler.CambiarEstado)
	registros.Get("/:id/orden-corte.pdf", registroHandler.OrdenCorte)

	// Movimientos de servicios externos (protegido)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Post("/", produccionRol, movimientoHandler.Create)
	movimientos.Get("/", movimientoHandler.ListByRegistro)
	movimientos.Put("/:id/devolucion", produccionRol, movimientoHandler.RegistrarDevolucion)

	// Export (solo admin)
	exportGroup := protected.Group("/export", soloAdmin)
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup.Get("/backup.json", exportHandler.ExportBackup)
	exportGroup.Get("/:tabla.csv", exportHandler.ExportCSV)
}
