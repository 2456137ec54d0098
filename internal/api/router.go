package api

import (
	"userbook/internal/api/handlers"
	"userbook/pkg/config"
	"userbook/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	usersHandler *handlers.UsersHandler,
	pagesHandler *handlers.PagesHandler,
	views fiber.Views,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views,
		ViewsLayout:  "layouts/main",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("request failed", zap.Error(err))
			}
			return c.Status(code).SendString(err.Error())
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.MethodOverride())

	// Static pages
	app.Get("/", pagesHandler.Home)
	app.Get("/about", pagesHandler.About)

	// Users resource. "/new" is registered before "/:id" so it is not
	// swallowed by the id segment.
	users := app.Group("/users")
	users.Get("/", usersHandler.Index)
	users.Get("/new", usersHandler.New)
	users.Post("/", usersHandler.Create)
	users.Get("/:id/edit", usersHandler.Edit)
	users.Patch("/:id", usersHandler.Update)
	users.Put("/:id", usersHandler.Update)
	users.Get("/:id", usersHandler.Show)
	users.Delete("/:id", usersHandler.Destroy)

	return app
}
