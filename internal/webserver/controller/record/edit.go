package record

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

// Edit renders the edit form for an existing record
func (r *Controller) Edit(c *fiber.Ctx) error {
	record, err := r.findRecord(c)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	return c.Render("edit", fiber.Map{
		"Title":  "Edit sleep record",
		"Record": record,
		"Errors": map[string]string{},
	}, "layout")
}
