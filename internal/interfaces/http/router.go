package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	StatsUC   *usecase.StatsUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products: lecturas públicas con identidad opcional (el token, si llega y
	// es válido, ajusta la visibilidad); mutaciones solo admin/vendedor.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StatsUC)

	products.Get("/", OptionalAuthMiddleware(deps.JWTSecret), productHandler.List)
	products.Get("/stats", OptionalAuthMiddleware(deps.JWTSecret), productHandler.Stats)
	products.Get("/:id", OptionalAuthMiddleware(deps.JWTSecret), productHandler.GetByID)

	escritores := []fiber.Handler{
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleVendedor),
	}
	products.Post("/", append(escritores, productHandler.Create)...)
	products.Post("/bulk", append(escritores, productHandler.CreateBulk)...)
	products.Put("/:id", append(escritores, productHandler.Update)...)
	products.Delete("/:id", append(escritores, productHandler.Delete)...)

	// Users (solo admin)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
}
