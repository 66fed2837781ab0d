package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/chatline/internal/client/cli"
	"github.com/dmitrijs2005/chatline/internal/client/config"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.New(os.Stderr, level)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
