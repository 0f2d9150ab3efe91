package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/tourplanner/internal/buildinfo"
	"github.com/dmitrijs2005/tourplanner/internal/client/cli"
	"github.com/dmitrijs2005/tourplanner/internal/client/config"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
