package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	StockHandler   *StockHandler
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login/register públicos, /user requiere token
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.AuthHandler.Login)
	authGroup.Post("/register", deps.AuthHandler.Register)
	authGroup.Get("/user", AuthMiddleware(deps.JWTSecret), deps.AuthHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	products.Post("/", deps.ProductHandler.Create)
	products.Get("/", deps.ProductHandler.List)
	products.Get("/:id", deps.ProductHandler.GetByID)
	products.Put("/:id", deps.ProductHandler.Update)
	products.Delete("/:id", deps.ProductHandler.Delete)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stock.Get("/", deps.StockHandler.ListLevels)
	stock.Post("/movements", deps.StockHandler.RegisterMovement)
	stock.Get("/movements", deps.StockHandler.ListMovements)
}
