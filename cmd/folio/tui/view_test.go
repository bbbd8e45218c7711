package tui

import (
	"strings"
	"testing"
)

func TestView_SmokeAllPages(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []string{"1", "2", "3", "4", "5"} {
		m = press(t, m, key)
		if m.focus == focusTerminal {
			m = press(t, m, "esc")
		}
		if out := m.View(); out == "" {
			t.Errorf("view for key %s rendered nothing", key)
		}
	}
}

func TestView_ProfileShowsIdentity(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, m.store.Profile.Name) {
		t.Error("profile view missing the owner's name")
	}
	if !strings.Contains(out, "OFFLINE") {
		t.Error("header should show the offline badge without a credential")
	}
}

func TestView_SearchEmptyStates(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/")
	m = typeString(t, m, "zzz-no-match")
	out := m.View()
	if !strings.Contains(out, "No matches") {
		t.Error("zero-match search should render the no-matches message")
	}
}

func TestView_AssistantPaneRenders(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "ctrl+a")
	out := m.View()
	if !strings.Contains(out, "Assistant") {
		t.Error("assistant pane missing its title")
	}
	if !strings.Contains(out, "offline replies") {
		t.Error("offline pipeline should be labeled in the pane")
	}
}

func TestView_NotReady(t *testing.T) {
	m := newTestModel(t)
	m.ready = false
	if got := m.View(); got != "Initializing..." {
		t.Errorf("unready view should render the boot line, got %q", got)
	}
}

func TestSafeRenderMarkdown_NilRendererFallsBack(t *testing.T) {
	m := newTestModel(t)
	m.renderer = nil

	const raw = "**bold** text"
	if got := m.safeRenderMarkdown(raw); got != raw {
		t.Errorf("nil renderer should fall back to raw text, got %q", got)
	}
}
