package main

import (
	"context"
	"log"
	"os"

	"github.com/lyrapkg/lyra/internal/fakeapi"
	"github.com/lyrapkg/lyra/internal/fakeapi/config"
	"github.com/lyrapkg/lyra/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stdout, cfg.LogLevel)
	app, err := fakeapi.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
