package config

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"local"`
	Server  Server  `yaml:"server"`
	Auth    Auth    `yaml:"auth"`
	Display Display `yaml:"display"`
}

type Server struct {
	BaseURL string        `yaml:"base_url" env:"UPARK_BASE_URL" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Auth struct {
	Token string `yaml:"token" env:"UPARK_TOKEN" validate:"required"`
}

type Display struct {
	// Timezone is an IANA zone name; empty means the system local zone.
	Timezone string `yaml:"timezone" env:"UPARK_TZ"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	return &cfg
}
