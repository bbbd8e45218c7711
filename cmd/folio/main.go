// folio is an interactive terminal portfolio: a themed resume browser with
// keyword search, a simulated shell, and a Gemini-backed assistant that
// degrades to scripted replies when no credential is configured.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio/cmd/folio/config"
	"folio/cmd/folio/tui"
	"folio/cmd/folio/ui"
	"folio/internal/assistant"
	"folio/internal/logging"
	"folio/internal/resume"
)

var (
	// Global flags
	verbose    bool
	apiKeyFlag string
	resumePath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - an interactive terminal portfolio",
	Long: `folio presents a resume through a themed terminal interface: browsable
views, keyword search, a simulated shell, and an assistant panel.

The assistant calls the Gemini API when a credential is configured
(--api-key, config file, GEMINI_API_KEY or GOOGLE_API_KEY) and answers
from scripted replies otherwise.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

func init() {
	// Assigned here rather than in the composite literal because the
	// closure references rootCmd, which would be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The interactive session owns stdout, so it logs to a file;
		// one-shot subcommands log to stderr.
		var err error
		if cmd == rootCmd {
			path, perr := config.LogFile()
			if perr != nil {
				return perr
			}
			logger, err = logging.NewFileLogger(path, verbose)
		} else {
			logger, err = logging.NewStderrLogger(verbose)
		}
		return err
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides config and environment)")
	rootCmd.PersistentFlags().StringVar(&resumePath, "resume", "", "path to a YAML dataset overriding the embedded one")

	configCmd.Flags().StringVar(&cfgSetTheme, "theme", "", "set the saved theme (dark, light or auto)")
	configCmd.Flags().StringVar(&cfgSetModel, "model", "", "set the saved Gemini model name")
	configCmd.Flags().StringVar(&cfgSetKey, "key", "", "set the saved API key")

	rootCmd.AddCommand(searchCmd, askCmd, exportCmd, doctorCmd, configCmd)
}

// loadStore picks the dataset: --resume file when given, the embedded
// document otherwise. Any failure here is fatal at startup.
func loadStore() (*resume.Store, error) {
	if resumePath != "" {
		return resume.LoadFile(resumePath)
	}
	return resume.Load()
}

// buildPipeline fixes the responder mode once. A missing credential is a
// mode switch, never an error; a present credential that cannot build a
// client degrades to offline with a warning rather than refusing to start.
func buildPipeline(ctx context.Context, store *resume.Store, cfg config.Config) *assistant.Pipeline {
	scripted := assistant.NewScripted(store)

	key := config.ResolveAPIKey(apiKeyFlag, cfg)
	if key == "" {
		logger.Info("no API credential, assistant in offline mode")
		return assistant.NewPipeline(scripted, nil, logger)
	}

	live, err := assistant.NewGemini(ctx, key, cfg.Model, store)
	if err != nil {
		logger.Warn("gemini client unavailable, assistant in offline mode", zap.Error(err))
		return assistant.NewPipeline(scripted, nil, logger)
	}
	logger.Info("assistant in online mode", zap.String("model", cfg.Model))
	return assistant.NewPipeline(scripted, live, logger)
}

func runInteractive(ctx context.Context) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pipeline := buildPipeline(ctx, store, cfg)
	voice := assistant.NewVoiceSession(pipeline.Online(), micOpener{})
	styles := ui.NewStyles(ui.ThemeFromName(cfg.Theme))

	return tui.Run(tui.New(store, pipeline, voice, styles, logger))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
