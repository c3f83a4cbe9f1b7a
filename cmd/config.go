package main

import (
	"log"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Compatible with "github.com/caarlos0/env"
type EnvConfig struct {
	OutputDir   string `env:"FACE_ALIGN_OUTPUT" envDefault:"./output/err"`
	PointsDir   string `env:"FACE_ALIGN_POINTS" envDefault:"./output/err/points"`
	WindowTitle string `env:"FACE_ALIGN_WINDOW" envDefault:"Face Alignment"`
}

func NewEnvConfig() *EnvConfig {
	_ = godotenv.Load()
	config := &EnvConfig{}
	err := env.Parse(config)
	if err != nil {
		log.Fatalf("Cannot Marshal Environment into Config: %v", err.Error())
	}
	return config
}
