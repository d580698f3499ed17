package model

import (
	"math"
	"time"
)

const notesMaxLength = 200

// SleepRecord is a single tracked sleep interval. SleepTime and WakeTime are
// naive local time: wall-clock values in the application's fixed zone, kept
// in UTC location so no offset reaches the database.
type SleepRecord struct {
	ID        uint      `gorm:"primarykey"`
	SleepTime time.Time `gorm:"not null"`
	WakeTime  time.Time `gorm:"not null"`
	Notes     string    `gorm:"size:200"`
	CreatedAt time.Time
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// DurationHours returns the length of the interval in hours, rounded to two
// decimals. Callers must ensure WakeTime comes after SleepTime before
// treating the result as meaningful.
func (r SleepRecord) DurationHours() float64 {
	hours := r.WakeTime.Sub(r.SleepTime).Seconds() / 3600
	return math.Round(hours*100) / 100
}

// Validate checks the record's fields to ensure they can be accepted by a
// create or edit operation
func (r SleepRecord) Validate() map[string]string {
	errs := map[string]string{}

	if !r.WakeTime.After(r.SleepTime) {
		errs["wake_time"] = "Wake time must be later than sleep time"
	}

	if len(r.Notes) > notesMaxLength {
		errs["notes"] = "Notes cannot be longer than 200 characters"
	}

	return errs
}

// Naive strips the offset from t while preserving its wall-clock reading,
// yielding the representation every stored timestamp uses.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
