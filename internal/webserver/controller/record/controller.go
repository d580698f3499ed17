package record

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
)

type recordsRepository interface {
	FindByID(id uint) (*model.SleepRecord, error)
	Create(record *model.SleepRecord) error
	Update(record *model.SleepRecord) error
	Delete(id uint) error
}

type Controller struct {
	repository recordsRepository
}

func NewController(repository recordsRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}

func (r *Controller) findRecord(c *fiber.Ctx) (*model.SleepRecord, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, model.ErrNotFound
	}
	return r.repository.FindByID(uint(id))
}
