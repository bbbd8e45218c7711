package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The activity feed is decoration for the terminal view: a slow drip of
// fake log lines below the scrollback. It runs only while the terminal
// view is active; ticks carry a generation stamp so a tick already in
// flight when the ticker stops is dropped instead of rescheduling.
const (
	activityTickEvery = 2 * time.Second
	maxActivityLines  = 5
)

var activityTemplates = []string{
	"GET /projects 200 %dms",
	"GET /skills 200 %dms",
	"healthcheck ok, uptime steady",
	"GET /education 200 %dms",
	"cache warm, 0 evictions",
}

// startActivityTicker begins the feed if it is not already running.
func (m *Model) startActivityTicker() tea.Cmd {
	if m.tickerRunning {
		return nil
	}
	m.tickerRunning = true
	m.tickerGen++
	return m.scheduleActivityTick()
}

// stopActivityTicker invalidates the current generation so no further
// ticks are scheduled or applied.
func (m *Model) stopActivityTicker() {
	m.tickerRunning = false
	m.tickerGen++
}

func (m Model) scheduleActivityTick() tea.Cmd {
	gen := m.tickerGen
	return tea.Tick(activityTickEvery, func(time.Time) tea.Msg {
		return activityTickMsg{gen: gen}
	})
}

func (m Model) handleActivityTick(msg activityTickMsg) (tea.Model, tea.Cmd) {
	if !m.tickerRunning || msg.gen != m.tickerGen {
		return m, nil
	}

	n := len(m.activity)
	tmpl := activityTemplates[n%len(activityTemplates)]
	line := tmpl
	if strings.Contains(tmpl, "%d") {
		line = fmt.Sprintf(tmpl, 8+(n*7)%40)
	}
	m.activity = append(m.activity, fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), line))
	if len(m.activity) > maxActivityLines {
		m.activity = m.activity[len(m.activity)-maxActivityLines:]
	}
	return m, m.scheduleActivityTick()
}
