package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/assistant"
	"folio/internal/nav"
	"folio/internal/search"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case assistantReplyMsg:
		m.chat = append(m.chat, assistant.ChatMessage(msg))
		m.isLoading = false
		m.syncChatViewport()
		return m, nil

	case activityTickMsg:
		return m.handleActivityTick(msg)

	case spinner.TickMsg:
		if m.isLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case stopwatch.TickMsg, stopwatch.StartStopMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.searchInput.Width = min(60, msg.Width-10)
	m.termInput.Width = msg.Width - 8
	m.skillBar.Width = min(40, msg.Width/2)

	paneW := m.assistantPaneWidth()
	m.composer.SetWidth(paneW - 4)
	m.chatVP.Width = paneW - 4
	m.chatVP.Height = max(4, msg.Height-12)
	m.renderer = newMarkdownRenderer(max(20, paneW-8))
	m.syncChatViewport()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys win regardless of focus.
	switch msg.Type {
	case tea.KeyCtrlC:
		m.shutdown()
		return m, tea.Quit

	case tea.KeyCtrlA:
		return m.toggleAssistant()

	case tea.KeyCtrlV:
		return m.toggleVoice()
	}

	switch m.focus {
	case focusAssistant:
		return m.updateComposer(msg)
	case focusSearch:
		return m.updateSearch(msg)
	case focusTerminal:
		return m.updateTerminal(msg)
	default:
		return m.updateNav(msg)
	}
}

// updateNav handles keys while no text input is focused.
func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.shutdown()
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		idx := int(msg.Runes[0] - '1')
		return m.navigateTo(nav.NavTargets[idx])

	case "tab":
		return m.navigateTo(m.nextNavTarget())

	case "/":
		m.focus = focusSearch
		return m, m.searchInput.Focus()

	case "o":
		return m, m.openPrimaryContact()
	}
	return m, nil
}

// nextNavTarget cycles through the direct navigation targets. From the
// Search view tab restarts at the first target.
func (m Model) nextNavTarget() nav.View {
	for i, v := range nav.NavTargets {
		if v == m.nav.Active {
			return nav.NavTargets[(i+1)%len(nav.NavTargets)]
		}
	}
	return nav.NavTargets[0]
}

// navigateTo is the explicit nav action: it clears any in-flight search
// so the next update does not bounce back into the Search view, and it
// scopes the terminal's activity ticker to the terminal view.
func (m Model) navigateTo(v nav.View) (tea.Model, tea.Cmd) {
	wasTerminal := m.nav.Active == nav.ViewTerminal
	m.nav = m.nav.Navigate(v)
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.results = search.ResultSet{}

	var cmd tea.Cmd
	if m.nav.Active == nav.ViewTerminal {
		m.focus = focusTerminal
		cmd = tea.Batch(m.termInput.Focus(), m.startActivityTicker())
	} else {
		m.focus = focusNav
		m.termInput.Blur()
		if wasTerminal {
			m.stopActivityTicker()
		}
	}
	return m, cmd
}

// updateSearch routes keys to the search input and keeps the nav state
// coupled to the query: non-empty forces the Search view, empty returns
// to the profile.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.focus = focusNav
		return m.applyQuery()

	case tea.KeyEnter:
		// Keep the results on screen, release the keyboard.
		m.searchInput.Blur()
		m.focus = focusNav
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	model, _ := m.applyQuery()
	return model, cmd
}

// applyQuery recomputes nav state and results from the input's value.
func (m Model) applyQuery() (tea.Model, tea.Cmd) {
	q := m.searchInput.Value()
	m.nav = m.nav.SetQuery(q)
	if m.nav.Searching() {
		m.results = search.Match(m.store, q)
	} else {
		m.results = search.ResultSet{}
	}
	return m, nil
}

// updateTerminal routes keys to the simulated shell.
func (m Model) updateTerminal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.termInput.Blur()
		m.focus = focusNav
		return m, nil

	case tea.KeyEnter:
		line := m.termInput.Value()
		if strings.TrimSpace(line) != "" {
			m.termHistory = m.interp.Execute(m.termHistory, line)
		}
		m.termInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.termInput, cmd = m.termInput.Update(msg)
	return m, cmd
}

// updateComposer routes keys to the assistant panel.
func (m Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeAssistant()

	case tea.KeyEnter:
		if !msg.Alt {
			return m.submitToAssistant()
		}

	case tea.KeyUp:
		// History previous, only from the top line so arrow keys still
		// move the cursor inside a multi-line draft.
		if m.composer.Line() == 0 {
			if m.sentIndex > 0 {
				if m.sentIndex == len(m.sentHistory) {
					m.draft = m.composer.Value()
				}
				m.sentIndex--
				m.composer.SetValue(m.sentHistory[m.sentIndex])
				m.composer.CursorEnd()
			}
			return m, nil
		}

	case tea.KeyDown:
		// History next, only from the bottom line. Stepping past the
		// newest entry restores whatever was being typed before recall.
		if m.composer.Line() == m.composer.LineCount()-1 {
			if m.sentIndex < len(m.sentHistory) {
				m.sentIndex++
				if m.sentIndex == len(m.sentHistory) {
					m.composer.SetValue(m.draft)
				} else {
					m.composer.SetValue(m.sentHistory[m.sentIndex])
				}
				m.composer.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// submitToAssistant sends the composed text through the pipeline. Input is
// single-flight: while a reply is pending the submission is ignored and
// the composer stays disabled-looking via the spinner.
func (m Model) submitToAssistant() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.composer.Value())
	if text == "" || m.isLoading {
		return m, nil
	}

	m.chat = append(m.chat, assistant.NewUserMessage(text))
	m.sentHistory = append(m.sentHistory, text)
	m.sentIndex = len(m.sentHistory)
	m.draft = ""
	m.composer.Reset()
	m.isLoading = true
	m.syncChatViewport()

	return m, tea.Batch(m.spinner.Tick, m.sendToAssistant(text))
}

// sendToAssistant runs the blocking round trip off the event loop and
// returns the reply as a message.
func (m Model) sendToAssistant(text string) tea.Cmd {
	pipeline := m.pipeline
	ctx := m.shutdownCtx
	return func() tea.Msg {
		return assistantReplyMsg(pipeline.Respond(ctx, text))
	}
}

func (m Model) toggleAssistant() (tea.Model, tea.Cmd) {
	if m.showAssistant {
		return m.closeAssistant()
	}
	m.showAssistant = true
	m.focus = focusAssistant
	m.searchInput.Blur()
	m.termInput.Blur()
	m.syncChatViewport()
	return m, m.composer.Focus()
}

func (m Model) closeAssistant() (tea.Model, tea.Cmd) {
	m.showAssistant = false
	m.composer.Blur()
	if m.nav.Active == nav.ViewTerminal {
		m.focus = focusTerminal
		return m, m.termInput.Focus()
	}
	m.focus = focusNav
	return m, nil
}

// toggleVoice drives the stubbed voice session. Status text lands in the
// chat transcript like any other assistant output.
func (m Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.voice == nil {
		return m, nil
	}
	var notice string
	if m.voice.Active() {
		m.voice.Stop()
		notice = "Voice session ended."
	} else {
		notice = m.voice.Start()
	}
	m.chat = append(m.chat, assistant.NewAssistantMessage(notice))
	if !m.showAssistant {
		return m.toggleAssistant()
	}
	m.syncChatViewport()
	return m, nil
}

func (m *Model) syncChatViewport() {
	m.chatVP.SetContent(m.renderChat())
	m.chatVP.GotoBottom()
}
