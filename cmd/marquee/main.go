package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hbomb79/Marquee/internal"
	"github.com/hbomb79/Marquee/pkg/logger"
)

var log = logger.Get("Bootstrap")

func main() {
	configPath := flag.String("config", internal.DefaultConfigPath, "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Emit(logger.FATAL, "%v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	config, err := internal.LoadConfig(configPath)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(config.LogLevel)
	if err != nil {
		log.Emit(logger.WARNING, "Ignoring log level %q: %v\n", config.LogLevel, err)
	} else {
		logger.SetMinLoggingLevel(level.Level())
	}

	marquee, err := internal.New(*config)
	if err != nil {
		return fmt.Errorf("failed to construct Marquee: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return marquee.Run(ctx)
}
