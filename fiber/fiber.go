package fiberapp

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// errorHandler answers API paths with JSON and pages with plain text.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorw("unhandled error", "path", c.Path(), "error", err)
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(code).SendString(err.Error())
}

func SetupFiber(templatesDir string) *fiber.App {
	engine := html.New(templatesDir, ".html")

	app := fiber.New(fiber.Config{
		AppName:      "Green SaaS",
		Views:        engine,
		ErrorHandler: errorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	return app
}
