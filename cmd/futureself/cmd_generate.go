package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"futureself/internal/generate"
	"futureself/internal/timeline"
)

var (
	generateFlags surveyFlags
	photoPath     string
	offsetYears   int
	allSlots      bool
	outDir        string
)

// generateCmd performs one-shot portrait generation without the interactive
// interface.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate aged portraits for one interval or the whole timeline",
	Long: `Generates future portraits through the Gemini image service and writes
them as future-self-<offset>-years.<ext> files.

Examples:
  futureself generate --photo me.jpg --offset 20 --age 30 --height 68 --weight 150
  futureself generate --photo me.jpg --all --out ./portraits --age 30 --height 68 --weight 150`,
	RunE: runGenerate,
}

func init() {
	generateFlags.register(generateCmd)
	generateCmd.Flags().StringVar(&photoPath, "photo", "", "Base photo file (required)")
	generateCmd.Flags().IntVar(&offsetYears, "offset", 0, "Interval to generate, in years (5, 10, ... 70)")
	generateCmd.Flags().BoolVar(&allSlots, "all", false, "Generate every interval")
	generateCmd.Flags().StringVar(&outDir, "out", ".", "Output directory for portrait files")
	_ = generateCmd.MarkFlagRequired("photo")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if !allSlots && offsetYears == 0 {
		return fmt.Errorf("either --offset or --all is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	info, answers, err := generateFlags.parse()
	if err != nil {
		return err
	}
	photo, mime, err := generate.LoadPhoto(photoPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	gen, err := generate.NewGemini(ctx, cfg.APIKey, cfg.Model, logger)
	if err != nil {
		return err
	}
	defer func() { _ = gen.Close() }()

	orch, err := timeline.New(timeline.Config{
		Generator: gen,
		Logger:    logger,
		BasicInfo: info,
		Answers:   answers,
		Photo:     photo,
		PhotoMIME: mime,
		Retry:     timeline.RetryPolicy{MaxAttempts: cfg.MaxAttempts, BackoffBase: cfg.BackoffBase},
	})
	if err != nil {
		return err
	}

	indices, err := targetIndices(orch)
	if err != nil {
		return err
	}

	for _, i := range indices {
		if err := orch.RequestSlot(ctx, i); err != nil {
			return fmt.Errorf("slot +%d years: %w", orch.Offsets()[i], err)
		}
	}
	orch.Wait()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write artifacts concurrently; each slot already holds its settled
	// outcome.
	g, _ := errgroup.WithContext(ctx)
	for _, i := range indices {
		slot, err := orch.Slot(i)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return reportSlot(cmd, slot)
		})
	}
	return g.Wait()
}

// targetIndices resolves --offset/--all to slot indices.
func targetIndices(orch *timeline.Orchestrator) ([]int, error) {
	offsets := orch.Offsets()
	if allSlots {
		indices := make([]int, len(offsets))
		for i := range offsets {
			indices[i] = i
		}
		return indices, nil
	}
	for i, offset := range offsets {
		if offset == offsetYears {
			return []int{i}, nil
		}
	}
	return nil, fmt.Errorf("no timeline interval at +%d years (intervals are 5 through 70 in steps of 5)", offsetYears)
}

// reportSlot writes a ready slot's portrait and prints the outcome.
func reportSlot(cmd *cobra.Command, slot timeline.Slot) error {
	switch slot.State {
	case timeline.StateReady:
		path := filepath.Join(outDir, slot.Filename())
		if err := os.WriteFile(path, slot.Image, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		cmd.Printf("+%d years: wrote %s\n", slot.Offset, path)
		return nil
	case timeline.StateDeceased:
		cmd.Printf("+%d years: beyond projected life expectancy (%d), no portrait\n",
			slot.Offset, slot.Snapshot.LifeExpectancy)
		return nil
	case timeline.StateFailed:
		return fmt.Errorf("slot +%d years failed after %d attempts: %w", slot.Offset, slot.Attempts, slot.Err)
	default:
		return fmt.Errorf("slot +%d years in unexpected state %s", slot.Offset, slot.State)
	}
}
