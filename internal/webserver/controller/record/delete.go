package record

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

// Delete removes a sleep record
func (r *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	if err := r.repository.Delete(uint(id)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Println(err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the record")
	}

	return c.Redirect("/")
}
