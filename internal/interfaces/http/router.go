package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC    *assets.AssetUseCase
	CustodyUC  *assets.CustodyUseCase
	LedgerUC   *assets.LedgerUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ReasonUC   *usecase.ReasonUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	// Assets (protegido)
	assetsGroup := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.CustodyUC)
	assetsGroup.Post("/", assetHandler.Create)
	assetsGroup.Post("/bulk", assetHandler.CreateBulk)
	assetsGroup.Get("/", assetHandler.List)
	assetsGroup.Get("/resolve", assetHandler.Resolve)
	assetsGroup.Get("/:id", assetHandler.GetByID)
	assetsGroup.Put("/:id", assetHandler.Update)
	assetsGroup.Delete("/:id", admin, assetHandler.Delete)
	assetsGroup.Get("/:id/label", assetHandler.Label)
	assetsGroup.Put("/:id/status", admin, assetHandler.SetStatus)

	// Movimientos de custodia y libro (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.CustodyUC, deps.LedgerUC)
	movements.Post("/check-out", movementHandler.CheckOut)
	movements.Post("/check-in", movementHandler.CheckIn)
	movements.Get("/", movementHandler.List)

	// Products (protegido; escrituras solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", admin, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Categories (protegido; escrituras solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", admin, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", admin, categoryHandler.Update)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Suppliers (protegido; escrituras solo admin)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", admin, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", admin, supplierHandler.Update)
	suppliers.Delete("/:id", admin, supplierHandler.Delete)

	// Exit reasons (protegido; escrituras solo admin, nunca se borran)
	reasons := protected.Group("/reasons")
	reasonHandler := NewReasonHandler(deps.ReasonUC)
	reasons.Post("/", admin, reasonHandler.Create)
	reasons.Get("/", reasonHandler.List)
	reasons.Put("/:id", admin, reasonHandler.Update)
	reasons.Put("/:id/active", admin, reasonHandler.SetActive)

	// Users (protegido, solo admin)
	users := protected.Group("/users", admin)
	users.Get("/", authHandler.ListUsers)
}
