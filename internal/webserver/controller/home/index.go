package home

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

const dateFormat = "2006-01-02"

type timeSince struct {
	Hours   int
	Minutes int
}

// Index lists the sleep records of the selected day, most recent first,
// along with the day's nap count and, when looking at today, the time
// elapsed since the last wake up.
func (d *Controller) Index(c *fiber.Ctx) error {
	now := model.Naive(time.Now().In(d.config.Location))
	today := now.Truncate(24 * time.Hour)

	selected := today
	if value := c.Query("date"); value != "" {
		parsed, err := time.Parse(dateFormat, value)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not fetch the records")
		}
		selected = parsed
	}

	records, err := d.repository.FindByDay(selected)
	if err != nil {
		log.Println(err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch the records")
	}

	vars := fiber.Map{
		"Title":        "Sleep records",
		"Records":      records,
		"NapsToday":    len(records),
		"SelectedDate": selected.Format(dateFormat),
		"IsToday":      selected.Equal(today),
	}

	if selected.Equal(today) && len(records) > 0 {
		if elapsed := now.Sub(records[0].WakeTime); elapsed >= 0 {
			vars["TimeSinceLast"] = timeSince{
				Hours:   int(elapsed.Hours()),
				Minutes: int(elapsed.Minutes()) % 60,
			}
		}
	}

	return c.Render("index", vars, "layout")
}
