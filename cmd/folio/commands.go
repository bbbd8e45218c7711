package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"folio/cmd/folio/config"
	"folio/internal/resume"
	"folio/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a one-shot keyword search over the dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")
		fmt.Fprint(cmd.OutOrStdout(), renderSearchResults(store, query))
		return nil
	},
}

// renderSearchResults formats a result set for scripting use: plain text,
// one entity per line, categories in dataset order.
func renderSearchResults(store *resume.Store, query string) string {
	rs := search.Match(store, query)
	if !rs.Active() {
		return "empty query\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d matches for %q\n", rs.Total(), rs.Query)
	if len(rs.Projects) > 0 {
		b.WriteString("\nprojects:\n")
		for _, p := range rs.Projects {
			fmt.Fprintf(&b, "  %s (%s) [%s]\n", p.Title, p.Type, strings.Join(p.Tech, ", "))
		}
	}
	if len(rs.Education) > 0 {
		b.WriteString("\neducation:\n")
		for _, e := range rs.Education {
			fmt.Fprintf(&b, "  %s, %s (%s)\n", e.Degree, e.School, e.Years)
		}
	}
	if len(rs.Skills) > 0 {
		b.WriteString("\nskills:\n")
		for _, sk := range rs.Skills {
			fmt.Fprintf(&b, "  %s %d/%d\n", sk.Subject, sk.Value, sk.Max)
		}
	}
	return b.String()
}

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the assistant one question and print the reply",
	Long: `Runs the same response pipeline as the interactive assistant panel,
including the offline fallback, and prints the reply to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 45*time.Second)
		defer cancel()

		pipeline := buildPipeline(ctx, store, cfg)
		msg := pipeline.Respond(ctx, strings.Join(args, " "))
		fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
		return nil
	},
}

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Serialize the dataset to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		return writeExport(cmd.OutOrStdout(), store, exportFormat)
	},
}

func writeExport(w io.Writer, store *resume.Store, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(store, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(store); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report configuration and dataset status",
	Long:  "Prints the config path, credential presence (masked), assistant mode, and dataset counts. Never prints the key itself.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		path, err := config.File()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), doctorReport(path, cfg, config.ResolveAPIKey(apiKeyFlag, cfg), store))
		return nil
	},
}

func doctorReport(configPath string, cfg config.Config, key string, store *resume.Store) string {
	mode := "offline (scripted replies)"
	if key != "" {
		mode = "online (Gemini)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "config file:    %s\n", configPath)
	fmt.Fprintf(&b, "api key:        %s\n", config.MaskKey(key))
	fmt.Fprintf(&b, "assistant mode: %s\n", mode)
	fmt.Fprintf(&b, "model:          %s\n", cfg.Model)
	fmt.Fprintf(&b, "theme:          %s\n", cfg.Theme)
	fmt.Fprintf(&b, "dataset:        %d projects, %d education entries, %d skills, %d certificates\n",
		len(store.Projects), len(store.Education), len(store.Skills), len(store.Certificates))
	return b.String()
}

var (
	cfgSetTheme string
	cfgSetModel string
	cfgSetKey   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update saved preferences",
	Long:  "Without flags, prints the saved preferences (key masked). With flags, updates and saves them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		changed := false
		if cfgSetTheme != "" {
			cfg.Theme = cfgSetTheme
			changed = true
		}
		if cfgSetModel != "" {
			cfg.Model = cfgSetModel
			changed = true
		}
		if cfgSetKey != "" {
			cfg.APIKey = cfgSetKey
			changed = true
		}
		if changed {
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\nmodel: %s\napi key: %s\n",
			cfg.Theme, cfg.Model, config.MaskKey(cfg.APIKey))
		return nil
	},
}

// micOpener is the platform microphone hook for the voice stub. There is
// no audio capture in this build; holding a handle on the sound device
// directory stands in for acquisition so the session lifecycle is real.
type micOpener struct{}

func (micOpener) OpenMicrophone() (io.Closer, error) {
	f, err := os.Open("/dev/snd")
	if err != nil {
		return nil, fmt.Errorf("no audio device available: %w", err)
	}
	return f, nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
}
