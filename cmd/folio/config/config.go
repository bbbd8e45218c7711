// Package config holds user preferences for folio: the Gemini credential,
// theme choice, and model name. Stored as JSON under a .folio directory;
// a missing file is not an error, defaults apply.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PlaceholderKey is the sentinel shipped in example configs. It reads as
// "no credential" so copying a sample file never switches on online mode.
const PlaceholderKey = "YOUR_GEMINI_API_KEY"

// Config holds user preferences.
type Config struct {
	APIKey string `json:"api_key"`
	Theme  string `json:"theme"` // "auto", "dark" or "light"
	Model  string `json:"model"` // Gemini model name
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Theme: "auto",
		Model: "gemini-2.5-flash",
	}
}

// Dir returns the directory where config and logs live. A project-local
// .folio directory wins when present or creatable, matching how the tool
// is typically run from its own checkout; otherwise ~/.folio.
func Dir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".folio")
		if stat, err := os.Stat(local); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return local, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogFile returns the path the interactive session logs to.
func LogFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio.log"), nil
}

// Load reads the configuration from disk. A missing file yields defaults
// without error; a present-but-invalid file is a startup error.
func Load() (Config, error) {
	path, err := File()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a specific config file, for tests and diagnostics.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to disk, creating the directory.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(dir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ResolveAPIKey applies the credential precedence: explicit flag, then the
// config file, then GEMINI_API_KEY, then GOOGLE_API_KEY. The placeholder
// sentinel and whitespace count as absent at every level. An empty result
// is not an error; it selects offline mode.
func ResolveAPIKey(flagKey string, cfg Config) string {
	for _, candidate := range []string{
		flagKey,
		cfg.APIKey,
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GOOGLE_API_KEY"),
	} {
		if key := normalizeKey(candidate); key != "" {
			return key
		}
	}
	return ""
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == PlaceholderKey {
		return ""
	}
	return key
}

// MaskKey renders a credential for diagnostics without revealing it.
func MaskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", 4) + key[len(key)-4:]
}
