package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/showcase/internal/buildinfo"
	"github.com/dmitrijs2005/showcase/internal/configx"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/server"
	"github.com/dmitrijs2005/showcase/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := configx.LoadDotEnv(); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
