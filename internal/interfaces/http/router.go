package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/agenda"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/auth"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/flota"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/social"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	InsumoUC     *inventario.InsumoUseCase
	RegistrarUC  *inventario.RegistrarMovimientoUseCase
	PrestamoUC   *inventario.PrestamoUseCase
	OrdenUC      *finanzas.OrdenUseCase
	OrdenPDFUC   *finanzas.PDFUseCase
	MovimientoUC *finanzas.MovimientoUseCase
	CatalogoUC   *finanzas.CategoriaUseCase
	DashboardUC  *finanzas.DashboardUseCase
	PadronUC     *social.PadronUseCase
	AtencionUC   *social.AtencionUseCase
	FlotaUC      *flota.FlotaUseCase
	AgendaUC     *agenda.TareaUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo administración)
	usuarios := protected.Group("/usuarios", RequireRol(domain.EsAdminSistema))
	usuarios.Post("/", authHandler.CrearUsuario)
	usuarios.Get("/", authHandler.ListarUsuarios)

	// Inventario
	insumoHandler := NewInsumoHandler(deps.InsumoUC, deps.RegistrarUC)
	insumos := protected.Group("/insumos")
	insumos.Post("/", insumoHandler.Crear)
	insumos.Get("/", insumoHandler.Listar)
	insumos.Get("/:id", insumoHandler.Obtener)
	insumos.Put("/:id", insumoHandler.Actualizar)
	insumos.Post("/:id/movimientos", insumoHandler.RegistrarMovimiento)
	insumos.Get("/:id/movimientos", insumoHandler.ListarMovimientos)
	insumos.Get("/:id/consistencia", insumoHandler.VerificarConsistencia)
	protected.Post("/insumos-categorias", insumoHandler.CrearCategoria)
	protected.Get("/insumos-categorias", insumoHandler.ListarCategorias)

	// Pañol (préstamos de herramientas)
	prestamoHandler := NewPrestamoHandler(deps.PrestamoUC)
	prestamos := protected.Group("/prestamos")
	prestamos.Post("/", prestamoHandler.Crear)
	prestamos.Get("/", prestamoHandler.Listar)
	prestamos.Get("/:id", prestamoHandler.Obtener)
	prestamos.Post("/:id/devolucion", prestamoHandler.RegistrarDevolucion)
	prestamos.Post("/:id/perdida", prestamoHandler.MarcarPerdido)

	// Órdenes
	ordenHandler := NewOrdenHandler(deps.OrdenUC, deps.OrdenPDFUC)
	ordenes := protected.Group("/ordenes")
	ordenes.Post("/", ordenHandler.Crear)
	ordenes.Get("/", ordenHandler.Listar)
	ordenes.Get("/:id", ordenHandler.Obtener)
	ordenes.Put("/:id", ordenHandler.Actualizar)
	ordenes.Post("/:id/estado", ordenHandler.CambiarEstado)
	ordenes.Get("/:id/pdf", ordenHandler.DescargarPDF)

	// Movimientos financieros
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos := protected.Group("/movimientos")
	movimientos.Post("/", movimientoHandler.Crear)
	movimientos.Get("/", movimientoHandler.Listar)
	movimientos.Get("/:id", movimientoHandler.Obtener)
	movimientos.Post("/:id/estado", movimientoHandler.CambiarEstado)

	// Catálogos financieros
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	protected.Post("/categorias", catalogoHandler.CrearCategoria)
	protected.Get("/categorias", catalogoHandler.ListarCategorias)
	protected.Post("/areas", catalogoHandler.CrearArea)
	protected.Get("/areas", catalogoHandler.ListarAreas)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Generar)

	// Padrones y atenciones
	socialHandler := NewSocialHandler(deps.PadronUC, deps.AtencionUC)
	beneficiarios := protected.Group("/beneficiarios")
	beneficiarios.Post("/", socialHandler.CrearBeneficiario)
	beneficiarios.Get("/", socialHandler.ListarBeneficiarios)
	beneficiarios.Get("/sugerencias", socialHandler.SugerirBeneficiarios)
	beneficiarios.Get("/:id", socialHandler.ObtenerBeneficiario)
	beneficiarios.Put("/:id", socialHandler.ActualizarBeneficiario)
	proveedores := protected.Group("/proveedores")
	proveedores.Post("/", socialHandler.CrearProveedor)
	proveedores.Get("/", socialHandler.ListarProveedores)
	proveedores.Get("/sugerencias", socialHandler.SugerirProveedores)
	proveedores.Get("/:id", socialHandler.ObtenerProveedor)
	proveedores.Put("/:id", socialHandler.ActualizarProveedor)
	atenciones := protected.Group("/atenciones")
	atenciones.Post("/", socialHandler.CrearAtencion)
	atenciones.Get("/", socialHandler.ListarAtenciones)
	atenciones.Post("/:id/resuelta", socialHandler.MarcarResuelta)

	// Flota
	flotaHandler := NewFlotaHandler(deps.FlotaUC)
	protected.Post("/vehiculos", flotaHandler.CrearVehiculo)
	protected.Get("/vehiculos", flotaHandler.ListarVehiculos)
	protected.Put("/vehiculos/:id", flotaHandler.ActualizarVehiculo)
	protected.Post("/hojas-ruta", flotaHandler.CrearHojaRuta)
	protected.Get("/hojas-ruta", flotaHandler.ListarHojasRuta)
	protected.Put("/hojas-ruta/:id", flotaHandler.ActualizarHojaRuta)
	protected.Get("/flota/resumen", flotaHandler.ResumenMensual)

	// Agenda
	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	tareas := protected.Group("/tareas")
	tareas.Post("/", agendaHandler.Crear)
	tareas.Get("/", agendaHandler.Listar)
	tareas.Get("/vencidas", agendaHandler.Vencidas)
	tareas.Get("/:id", agendaHandler.Obtener)
	tareas.Put("/:id", agendaHandler.Actualizar)
}
