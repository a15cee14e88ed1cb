package main

import (
	"context"

	"futureself/cmd/futureself/ui"
	"futureself/internal/generate"
	"futureself/internal/timeline"
)

// runInteractive starts the full interface: photo, basic info, quiz, then the
// generation timeline.
func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	gen, err := generate.NewGemini(ctx, cfg.APIKey, cfg.Model, logger)
	if err != nil {
		return err
	}
	defer func() { _ = gen.Close() }()

	return ui.Run(ui.Options{
		Generator: gen,
		Logger:    logger,
		Retry:     timeline.RetryPolicy{MaxAttempts: cfg.MaxAttempts, BackoffBase: cfg.BackoffBase},
	})
}
