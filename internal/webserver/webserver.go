package webserver

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/infrastructure"
	"golang.org/x/text/message"
)

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, printers map[string]*message.Printer, controllers Controllers) *fiber.App {
	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}
	engine.Reload(cfg.Debug)

	app := fiber.New(fiber.Config{
		AppName:           cfg.Version,
		Views:             engine,
		PassLocalsToViews: true,
		ErrorHandler:      errorHandler,
	})

	routes(app, controllers)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Retrieve the custom status code and message if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	view := "errors/500"
	if code == fiber.StatusNotFound {
		view = "errors/404"
		message = "Page not found"
	}

	// Send custom error page
	err = c.Status(code).Render(view, fiber.Map{
		"Lang":    chooseBestLanguage(c),
		"Title":   "Error",
		"Version": c.App().Config().AppName,
		"Message": message,
	}, "layout")

	if err != nil {
		log.Println(err)
		// In case the Render fails
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return nil
}
