package main

import (
	"fmt"
	"os"
	"time"

	"apptrack/cli"
	"apptrack/config"
	"apptrack/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}
	defer log.Sync()

	app := &cli.App{
		Config: cfg,
		Log:    log,
		In:     os.Stdin,
		Out:    os.Stdout,
		Now:    time.Now,
	}

	var runErr error
	if len(os.Args) > 1 {
		runErr = app.Dispatch(os.Args[1:])
	} else {
		runErr = app.Interactive()
	}
	if runErr != nil {
		log.Errorw("command failed", "error", runErr)
		os.Exit(1)
	}
}
