package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/admin"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/review"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *catalog.ProductUseCase
	CategoryUC  *catalog.CategoryUseCase
	CartUC      *cart.UseCase
	CheckoutUC  *checkout.UseCase
	ReviewUC    *review.UseCase
	DashboardUC *admin.DashboardUseCase
	AdminOrders *admin.OrderUseCase
	AdminUsers  *admin.UserUseCase
	Users       UserLoader
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthRequired(deps.JWTSecret, deps.Users)
	authOptional := AuthOptional(deps.JWTSecret, deps.Users)
	adminOnly := RequireAdmin()

	// Auth (público + perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", authRequired, authHandler.Verify)
	authGroup.Get("/profile", authRequired, authHandler.Profile)
	authGroup.Put("/profile", authRequired, authHandler.UpdateProfile)
	authGroup.Put("/change-password", authRequired, authHandler.ChangePassword)

	// Catálogo (auth opcional: anónimos navegan igual)
	productHandler := NewProductHandler(deps.ProductUC)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	products := api.Group("/products", authOptional)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Detail)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:id", categoryHandler.Detail)

	// Carrito (protegido)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup := api.Group("/cart", authRequired)
	cartGroup.Get("/", cartHandler.View)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:id", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:id", cartHandler.Remove)

	// Pedidos del cliente (protegido)
	orderHandler := NewOrderHandler(deps.CheckoutUC)
	orders := api.Group("/orders", authRequired)
	orders.Post("/", orderHandler.Place)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.Detail)

	// Reseñas (listado con auth opcional, publicación protegida)
	api.Get("/reviews/product/:productId", authOptional, reviewHandler.ListByProduct)
	api.Post("/reviews", authRequired, reviewHandler.Create)

	// Panel de administración (protegido + rol admin)
	adminHandler := NewAdminHandler(deps.DashboardUC, deps.AdminOrders, deps.AdminUsers)
	adminGroup := api.Group("/admin", authRequired, adminOnly)
	adminGroup.Get("/dashboard", adminHandler.Dashboard)
	adminGroup.Get("/orders", adminHandler.ListOrders)
	adminGroup.Get("/orders/:id", adminHandler.OrderDetail)
	adminGroup.Put("/orders/:id/status", adminHandler.UpdateOrderStatus)
	adminGroup.Get("/users", adminHandler.ListUsers)
	adminGroup.Get("/users/:id", adminHandler.GetUser)
	adminGroup.Put("/users/:id", adminHandler.UpdateUser)
	adminGroup.Delete("/users/:id", adminHandler.DeleteUser)
	adminGroup.Post("/products", productHandler.Create)
	adminGroup.Put("/products/:id", productHandler.Update)
	adminGroup.Delete("/products/:id", productHandler.Delete)
	adminGroup.Post("/categories", categoryHandler.Create)
}
