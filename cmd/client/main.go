package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/showcase/internal/buildinfo"
	"github.com/dmitrijs2005/showcase/internal/client/cli"
	"github.com/dmitrijs2005/showcase/internal/client/config"
	"github.com/dmitrijs2005/showcase/internal/configx"
	"github.com/dmitrijs2005/showcase/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := configx.LoadDotEnv(); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, "text")

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
