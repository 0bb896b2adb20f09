package main

import (
	"log"

	"github.com/STEVENBOBER/LegacyBridge/config"
	"github.com/STEVENBOBER/LegacyBridge/internal/app"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	app.Run(cfg)
}
