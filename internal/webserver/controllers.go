package webserver

import (
	"log"
	"time"

	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/controller/home"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/controller/nap"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/controller/record"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/model"
	"gorm.io/gorm"
)

// localTimezone is the wall clock used to stamp naps and to pick the current
// day. Records hold naive local times, without offset.
const localTimezone = "Europe/Warsaw"

type Controllers struct {
	Home    *home.Controller
	Records *record.Controller
	Naps    *nap.Controller
}

func SetupControllers(db *gorm.DB) Controllers {
	location, err := time.LoadLocation(localTimezone)
	if err != nil {
		log.Fatal(err)
	}

	recordsRepository := &model.RecordRepository{DB: db}

	homeCfg := home.Config{
		Location: location,
	}

	napCfg := nap.Config{
		Location: location,
	}

	return Controllers{
		Home:    home.NewController(recordsRepository, homeCfg),
		Records: record.NewController(recordsRepository),
		Naps:    nap.NewController(recordsRepository, napCfg),
	}
}
