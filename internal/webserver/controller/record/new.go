package record

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

// New renders the empty add record form
func (r *Controller) New(c *fiber.Ctx) error {
	return c.Render("add", fiber.Map{
		"Title":  "Add sleep record",
		"Record": model.SleepRecord{},
		"Errors": map[string]string{},
	}, "layout")
}
