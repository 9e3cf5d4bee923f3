package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	Images     imageSaver
	Revoker    revocationChecker // opcional
	Session    SessionConfig
}

// Router registra las rutas del back-office.
func Router(app fiber.Router, deps RouterDeps) {
	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.AuthUC, deps.Session)
	app.Get("/login", sessionHandler.LoginForm)
	app.Post("/login", sessionHandler.Login)

	authenticated := app.Group("/", AuthMiddleware(deps.Session, deps.UserUC, deps.Revoker))
	authenticated.Post("/logout", sessionHandler.Logout)

	// Rutas de staff
	staff := authenticated.Group("/", RequireStaff())
	staff.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(usersIndex, fiber.StatusSeeOther)
	})

	users := staff.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/create", userHandler.CreateForm)
	users.Post("/create", userHandler.Create)
	users.Get("/:id/edit", userHandler.EditForm)
	users.Post("/:id/edit", userHandler.Update)
	users.Get("/:id/delete", userHandler.DeleteConfirm)
	users.Post("/:id/delete", userHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC, deps.CategoryUC, deps.Images)
	products := staff.Group("/products")
	products.Get("/category/:id", productHandler.ListByCategory)
	products.Get("/:id/edit", productHandler.EditForm)
	products.Post("/:id/edit", productHandler.Update)
	products.Get("/:id/delete", productHandler.DeleteConfirm)
	products.Post("/:id/delete", productHandler.Delete)
	staff.Get("/categories/:id/products/create", productHandler.CreateForm)
	staff.Post("/categories/:id/products/create", productHandler.Create)

	// Categorías (solo superusuarios)
	categories := staff.Group("/categories", RequireSuperuser())
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ProductUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/create", categoryHandler.CreateForm)
	categories.Post("/create", categoryHandler.Create)
	categories.Get("/:id/edit", categoryHandler.EditForm)
	categories.Post("/:id/edit", categoryHandler.Update)
	categories.Get("/:id/delete", categoryHandler.DeleteConfirm)
	categories.Post("/:id/delete", categoryHandler.Delete)
	categories.Get("/:id/products", categoryHandler.Products)
}
