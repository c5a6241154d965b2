package main

import (
	"context"
	"fmt"
	"os"

	"punchclock/internal/clock"
	"punchclock/internal/config"
	"punchclock/internal/logger"
	"punchclock/internal/store"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	st, err := store.Open(ctx, cfg.Backend, cfg.SheetPath, log)
	if err != nil {
		return err
	}
	defer st.Close()

	app := NewApp(st, clock.Real{}, log, os.Stdout)

	return SetupCommands(app).ExecuteContext(ctx)
}
