package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"futureself/internal/config"
	"futureself/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "futureself",
	Short: "futureself - see your future self, one timeline slot at a time",
	Long: `futureself projects your health decades forward from a short wellness
survey and generates aged portraits of you at each future interval.

The projection math is deterministic and runs locally; only the portrait
generation calls the Gemini image service.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive mode owns the terminal; it gets a no-op logger
		// unless verbose output was explicitly requested.
		if cmd.CalledAs() == "futureself" && !verbose {
			logger = logging.Nop()
			return nil
		}
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive interface
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.futureself.yaml)")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration for every subcommand. The credential is
// required even for offline commands so that misconfiguration surfaces
// immediately rather than at first generation.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
