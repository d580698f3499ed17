package record

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

// timeInputFormat is the layout of the datetime-local form inputs
const timeInputFormat = "2006-01-02T15:04"

// parseForm gathers a candidate record from the submitted form values. The
// returned errors are keyed by field; the record carries whatever could be
// parsed so the form can be redisplayed filled in.
func parseForm(c *fiber.Ctx) (*model.SleepRecord, map[string]string) {
	errs := map[string]string{}
	record := &model.SleepRecord{
		Notes: c.FormValue("notes"),
	}

	sleepTime, err := time.Parse(timeInputFormat, c.FormValue("sleep_time"))
	if err != nil {
		errs["sleep_time"] = "Incorrect sleep time"
	}
	record.SleepTime = sleepTime

	wakeTime, err := time.Parse(timeInputFormat, c.FormValue("wake_time"))
	if err != nil {
		errs["wake_time"] = "Incorrect wake time"
	}
	record.WakeTime = wakeTime

	if len(errs) > 0 {
		return record, errs
	}

	return record, record.Validate()
}
