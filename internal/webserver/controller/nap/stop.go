package nap

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

type stopRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// Stop persists a finished nap as a sleep record, numbering it after the
// records already stored for the current day.
func (n *Controller) Stop(c *fiber.Ctx) error {
	var body stopRequest

	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid nap interval")
	}

	today := model.Naive(time.Now().In(n.config.Location)).Truncate(24 * time.Hour)
	count, err := n.repository.CountByDay(today)
	if err != nil {
		log.Println(err)
		return jsonError(c, fiber.StatusInternalServerError, "could not save the nap")
	}

	record := &model.SleepRecord{
		SleepTime: model.Naive(body.StartTime),
		WakeTime:  model.Naive(body.EndTime),
		Notes:     fmt.Sprintf("Nap #%d", count+1),
	}
	if err := n.repository.Create(record); err != nil {
		log.Println(err)
		return jsonError(c, fiber.StatusInternalServerError, "could not save the nap")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "saved",
	})
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
