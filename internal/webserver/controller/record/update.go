package record

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

// Update overwrites an existing record with the submitted form values
func (r *Controller) Update(c *fiber.Ctx) error {
	record, err := r.findRecord(c)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	submitted, errs := parseForm(c)
	submitted.ID = record.ID
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("edit", fiber.Map{
			"Title":  "Edit sleep record",
			"Record": submitted,
			"Errors": errs,
		}, "layout")
	}

	if err := r.repository.Update(submitted); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).Render("edit", fiber.Map{
			"Title":  "Edit sleep record",
			"Record": submitted,
			"Errors": map[string]string{"general": "There was an error updating the record"},
		}, "layout")
	}

	return c.Redirect("/")
}
