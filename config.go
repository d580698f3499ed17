package main

type Config struct {
	SecretKey    string `env:"SECRET_KEY" env-default:"default-secret-key"`
	DatabasePath string `env:"DATABASE_PATH" env-default:"sleep_tracker.db"`
	Port         string `env:"PORT" env-default:"5000"`
	Debug        bool   `env:"DEBUG" env-default:"false"`
}
