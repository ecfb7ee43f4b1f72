package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistem-barang/internal/application/auth"
	"github.com/tu-usuario/sistem-barang/internal/application/bom"
	"github.com/tu-usuario/sistem-barang/internal/application/catalog"
	"github.com/tu-usuario/sistem-barang/internal/application/ledger"
	"github.com/tu-usuario/sistem-barang/internal/application/settings"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CatalogUC  *catalog.UseCase
	BOMUC      *bom.UseCase
	LedgerUC   *ledger.UseCase
	SettingsUC *settings.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Solo /auth/login es público; todo lo
// demás exige el token de sesión.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Catálogos: tres rutas paralelas sobre el mismo handler
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogRoutes := []struct {
		path string
		kind string
	}{
		{"/materials", entity.CatalogMaterial},
		{"/semi-finished", entity.CatalogSemiFinished},
		{"/finished-goods", entity.CatalogFinished},
	}
	for _, cr := range catalogRoutes {
		g := api.Group(cr.path)
		g.Get("/", catalogHandler.List(cr.kind))
		g.Post("/", catalogHandler.Create(cr.kind))
		g.Get("/:id", catalogHandler.Get(cr.kind))
		g.Put("/:id", catalogHandler.Update(cr.kind))
	}

	// Ledger de stock
	stockHandler := NewStockHandler(deps.LedgerUC)
	stock := api.Group("/stock")
	stock.Post("/movement", stockHandler.RecordMovement)
	stock.Get("/movements", stockHandler.ListMovements)

	// BOM
	bomHandler := NewBOMHandler(deps.BOMUC)
	api.Post("/bom", bomHandler.AddComponent)
	api.Get("/bom/:finished_good_id", bomHandler.ListComponents)

	// Usuarios
	userHandler := NewUserHandler(deps.AuthUC)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)

	// Settings
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)
}
