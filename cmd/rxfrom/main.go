package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arielf-camacho/rxfrom/config"
	"github.com/arielf-camacho/rxfrom/internal/demo"
	"github.com/arielf-camacho/rxfrom/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Errorln("load config: %v", err)
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)

	if err := demo.Run(ctx, cfg, os.Stdout); err != nil {
		log.Errorln("run: %v", err)
		os.Exit(1)
	}
}
