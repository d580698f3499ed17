package webserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Use("/js", filesystem.New(filesystem.Config{
		Root: http.FS(jsFS),
	}))

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("Lang", chooseBestLanguage(c))
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	})

	app.Get("/", controllers.Home.Index)

	app.Get("/add", controllers.Records.New)
	app.Post("/add", controllers.Records.Create)

	app.Get("/edit_record/:id<int>", controllers.Records.Edit)
	app.Post("/edit_record/:id<int>", controllers.Records.Update)
	app.Post("/delete_record/:id<int>", controllers.Records.Delete)

	app.Post("/start_nap", controllers.Naps.Start)
	app.Post("/stop_nap", controllers.Naps.Stop)
}
