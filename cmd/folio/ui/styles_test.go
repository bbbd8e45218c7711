package ui

import (
	"strings"
	"testing"
)

func TestDetectTheme_EnvOverride(t *testing.T) {
	t.Setenv("FOLIO_THEME", "dark")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme when FOLIO_THEME=dark")
	}

	t.Setenv("FOLIO_THEME", "light")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme when FOLIO_THEME=light")
	}
}

func TestThemeFromName(t *testing.T) {
	if !ThemeFromName("dark").IsDark {
		t.Error("ThemeFromName(dark) should be dark")
	}
	if ThemeFromName("light").IsDark {
		t.Error("ThemeFromName(light) should be light")
	}
	if ThemeFromName("DARK") != ThemeFromName("dark") {
		t.Error("theme names should be case-insensitive")
	}
}

func TestRenderDivider(t *testing.T) {
	styles := NewStyles(DarkTheme())
	if got := styles.RenderDivider(0); got != "" {
		t.Errorf("zero-width divider should be empty, got %q", got)
	}
	if got := styles.RenderDivider(-3); got != "" {
		t.Errorf("negative-width divider should be empty, got %q", got)
	}
	if got := styles.RenderDivider(5); !strings.Contains(got, "─────") {
		t.Errorf("divider missing rule characters: %q", got)
	}
}

func TestLogo(t *testing.T) {
	logo := Logo(NewStyles(DarkTheme()))
	if !strings.Contains(logo, "_") {
		t.Error("logo should contain the wordmark art")
	}
}
