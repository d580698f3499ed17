package nap

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

var validate = validator.New()

type recordsRepository interface {
	Create(record *model.SleepRecord) error
	CountByDay(day time.Time) (int64, error)
}

type Config struct {
	// Location holds the timezone used to stamp nap times
	Location *time.Location
}

type Controller struct {
	repository recordsRepository
	config     Config
}

func NewController(repository recordsRepository, config Config) *Controller {
	return &Controller{
		repository: repository,
		config:     config,
	}
}
