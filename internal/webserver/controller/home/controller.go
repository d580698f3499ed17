package home

import (
	"time"

	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

type recordsRepository interface {
	FindByDay(day time.Time) ([]model.SleepRecord, error)
}

type Config struct {
	// Location is the fixed zone all stored timestamps are read in
	Location *time.Location
}

type Controller struct {
	repository recordsRepository
	config     Config
}

func NewController(repository recordsRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
