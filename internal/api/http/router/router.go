package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Agent-cat/Expence-Tracker/internal/api/http/handler"
	"github.com/Agent-cat/Expence-Tracker/internal/api/http/middleware"
)

// New builds the fiber application with all routes registered.
func New(
	authHandler *handler.Auth,
	expenseHandler *handler.Expense,
	authenticate *middleware.Authenticate,
	logging *middleware.Logging,
	allowOrigins string,
) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(logging.Handle)
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/validate", authenticate.Handle, authHandler.Validate)
	auth.Get("/profile", authenticate.Handle, authHandler.Profile)

	expenses := api.Group("/expenses", authenticate.Handle)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	// the category route must precede the id route so that
	// "/category/food" is not captured as an expense id
	expenses.Get("/category/:category", expenseHandler.ListByCategory)
	expenses.Get("/:id", expenseHandler.Get)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	return app
}
