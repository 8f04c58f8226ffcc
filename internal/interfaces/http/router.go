package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/busquedas"
	"github.com/jhoicas/Planta-api/internal/application/tareas"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LifecycleUC *tareas.LifecycleUseCase
	ConsultasUC *tareas.ConsultasUseCase
	LogUC       *busquedas.LogUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	CatalogoUC  *usecase.CatalogoUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas de planta van en la raíz,
// sin prefijo, para conservar las URL que consumen las tablets de taller.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Ciclo de vida de tareas
	tareasHandler := NewTareasHandler(deps.LifecycleUC)
	app.Post("/tareas/iniciar", tareasHandler.Iniciar)
	app.Put("/tareas/:area/:id", tareasHandler.Actualizar)
	app.Post("/tareas/:area/:id/finalizar", tareasHandler.Finalizar)
	app.Post("/tareas/:area/:id/pendiente", tareasHandler.Reabrir)

	// Consultas (sin caché: el estado cambia entre sondeos de las tablets)
	noCache := NoCache()
	consultasHandler := NewConsultasHandler(deps.ConsultasUC)
	app.Get("/tareas/:area/pendiente/:vin", noCache, consultasHandler.PendientePorVIN)
	app.Get("/tareas/:area/finalizado/:vin", noCache, consultasHandler.Finalizado)
	app.Get("/tareas/:area/:id/snapshot", noCache, consultasHandler.Snapshot)
	app.Get("/pendientes/:usuarioId", noCache, consultasHandler.PendientesUsuario)
	app.Get("/chasis/vin-estado/:vin", noCache, consultasHandler.EstadoVIN)
	app.Get("/chasis/bastidores", noCache, consultasHandler.Bastidores)
	app.Get("/pintura/colores", noCache, consultasHandler.Colores)
	app.Get("/pintura/color-por-vin/:vin", noCache, consultasHandler.ColorPorVIN)
	app.Get("/montaje/vin-disponible/:vin", noCache, consultasHandler.DisponibleMontaje)

	// Buscador global
	busquedasHandler := NewBusquedasHandler(deps.LogUC)
	app.Get("/busquedas/tareas", noCache, busquedasHandler.Log)
	app.Get("/busquedas/tareas/pdf", busquedasHandler.LogPDF)

	// Catálogo de tareas por proceso
	catalogo := app.Group("/catalogo")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogo.Get("/tareas", catalogoHandler.Listar)
	catalogo.Post("/tareas", catalogoHandler.Crear)
	catalogo.Put("/tareas/:id", catalogoHandler.Actualizar)
	catalogo.Delete("/tareas/:id", catalogoHandler.Borrar)

	// Usuarios (protegido, solo admin)
	usuarios := app.Group("/usuarios", AuthMiddleware(deps.JWTSecret), RequireAdmin())
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Post("/", usuarioHandler.Crear)
	usuarios.Put("/:id", usuarioHandler.Actualizar)
	usuarios.Delete("/:id", usuarioHandler.Borrar)
	usuarios.Post("/:id/reset-password", usuarioHandler.ResetPassword)
	usuarios.Post("/:id/change-password", usuarioHandler.CambiarPassword)
}
