package main

import (
	"fmt"
	"log"

	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment variables")
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	db := infrastructure.Connect(cfg.DatabasePath)

	app := webserver.New(
		webserver.Config{
			Version: version,
			Debug:   cfg.Debug,
		},
		webserver.Printers(),
		webserver.SetupControllers(db),
	)

	fmt.Printf("Sleep trucker version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
