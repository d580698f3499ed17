package record

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Create adds a new sleep record from the submitted form values
func (r *Controller) Create(c *fiber.Ctx) error {
	record, errs := parseForm(c)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("add", fiber.Map{
			"Title":  "Add sleep record",
			"Record": record,
			"Errors": errs,
		}, "layout")
	}

	if err := r.repository.Create(record); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).Render("add", fiber.Map{
			"Title":  "Add sleep record",
			"Record": record,
			"Errors": map[string]string{"general": "There was an error saving the record"},
		}, "layout")
	}

	return c.Redirect("/")
}
