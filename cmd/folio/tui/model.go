// Package tui implements the interactive portfolio interface: the view
// pages, the search bar, the simulated shell, and the assistant panel.
// All state transitions run in Update on the bubbletea event loop; the
// only blocking work is the assistant round trip, issued as a tea.Cmd.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"folio/cmd/folio/ui"
	"folio/internal/assistant"
	"folio/internal/console"
	"folio/internal/nav"
	"folio/internal/resume"
	"folio/internal/search"
)

// focus tracks which input owns the keyboard. Nav focus means no text
// input is active, so plain keys navigate.
type focus int

const (
	focusNav focus = iota
	focusSearch
	focusTerminal
	focusAssistant
)

// Messages for tea updates.
type (
	// assistantReplyMsg carries the pipeline's message back to the loop.
	assistantReplyMsg assistant.ChatMessage
	// activityTickMsg drives the decorative terminal activity feed. The
	// generation stamp lets a stopped ticker's in-flight tick be dropped.
	activityTickMsg struct{ gen int }
)

// Model is the single bubbletea model for the whole interface.
type Model struct {
	// Backend
	store    *resume.Store
	interp   *console.Interpreter
	pipeline *assistant.Pipeline
	voice    *assistant.VoiceSession
	log      *zap.Logger

	// Shutdown plumbing: cancels an in-flight assistant call on quit.
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc

	// Navigation and search
	nav         nav.State
	searchInput textinput.Model
	results     search.ResultSet

	// Terminal view
	termInput     textinput.Model
	termHistory   []string
	activity      []string
	tickerGen     int
	tickerRunning bool

	// Assistant panel
	showAssistant bool
	composer      textarea.Model
	chatVP        viewport.Model
	chat          []assistant.ChatMessage
	sentHistory   []string
	sentIndex     int
	draft         string
	isLoading     bool

	// Presentation
	styles   ui.Styles
	spinner  spinner.Model
	clock    stopwatch.Model
	skillBar progress.Model
	renderer *glamour.TermRenderer

	focus  focus
	width  int
	height int
	ready  bool
}

// New assembles the model. The pipeline's mode (online/offline) is fixed
// by the caller; the model never inspects credentials.
func New(store *resume.Store, pipeline *assistant.Pipeline, voice *assistant.VoiceSession, styles ui.Styles, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	si := textinput.New()
	si.Placeholder = "type to search projects, education, skills"
	si.Prompt = "/ "
	si.CharLimit = 80

	ti := textinput.New()
	ti.Prompt = console.Prompt
	ti.CharLimit = 120

	comp := textarea.New()
	comp.Placeholder = "Ask about projects, skills, education..."
	comp.SetHeight(3)
	comp.ShowLineNumbers = false
	comp.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	ctx, cancel := context.WithCancel(context.Background())

	interp := console.New(store)
	m := Model{
		store:          store,
		interp:         interp,
		pipeline:       pipeline,
		voice:          voice,
		log:            log,
		shutdownCtx:    ctx,
		shutdownCancel: cancel,
		nav:            nav.NewState(),
		searchInput:    si,
		termInput:      ti,
		termHistory:    interp.Banner(),
		composer:       comp,
		chatVP:         viewport.New(0, 0),
		chat:           []assistant.ChatMessage{pipeline.Greeting()},
		styles:         styles,
		spinner:        sp,
		clock:          stopwatch.NewWithInterval(time.Second),
		skillBar:       bar,
	}
	m.renderer = newMarkdownRenderer(defaultChatWrap)
	return m
}

const defaultChatWrap = 46

// newMarkdownRenderer builds the glamour renderer for assistant replies.
// A nil renderer is tolerated everywhere (raw text fallback).
func newMarkdownRenderer(wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// Init starts the session clock and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.clock.Init(), textinput.Blink)
}

// shutdown releases everything the model holds before quitting: the
// in-flight assistant context, the voice device handle, and the ticker.
func (m *Model) shutdown() {
	m.shutdownCancel()
	if m.voice != nil {
		m.voice.Stop()
	}
	m.stopActivityTicker()
}

// Run launches the interactive program.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
