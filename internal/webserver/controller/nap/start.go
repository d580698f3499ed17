package nap

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Start returns the current time so the client can hold on to it until the
// nap is stopped. Nothing is persisted yet.
func (n *Controller) Start(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "success",
		"start_time": time.Now().In(n.config.Location).Format(time.RFC3339),
	})
}
