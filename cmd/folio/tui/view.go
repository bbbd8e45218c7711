package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/assistant"
	"folio/internal/nav"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderNav(),
		m.searchInput.View(),
		m.styles.RenderDivider(m.mainWidth()),
		m.renderPage(),
	)

	body := main
	if m.showAssistant {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.mainWidth()).Render(main),
			m.renderAssistantPane(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m Model) mainWidth() int {
	if m.showAssistant {
		return max(20, m.width-m.assistantPaneWidth())
	}
	return m.width
}

// assistantPaneWidth sizes the split pane: roughly a third of the screen,
// clamped so chat stays readable on both narrow and wide terminals.
func (m Model) assistantPaneWidth() int {
	if m.width == 0 {
		return defaultChatWrap + 4
	}
	w := m.width / 3
	if w < 36 {
		w = 36
	}
	if w > 64 {
		w = 64
	}
	return min(w, m.width)
}

func (m Model) renderHeader() string {
	mode := "OFFLINE"
	if m.pipeline.Online() {
		mode = "ONLINE"
	}
	left := m.styles.Header.Render(m.store.Profile.Name) +
		m.styles.Subtitle.Render(" "+m.store.Profile.Title)
	right := m.styles.Badge.Render(mode) + m.styles.Muted.Render("  "+formatElapsed(m.clock.Elapsed().Seconds()))

	gap := m.mainWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func formatElapsed(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func (m Model) renderNav() string {
	var items []string
	for i, v := range nav.NavTargets {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.nav.Active {
			items = append(items, m.styles.NavActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}
	if m.nav.Searching() {
		items = append(items, m.styles.NavActive.Render("* Search"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, items...)
}

func (m Model) renderPage() string {
	var page string
	switch m.nav.Active {
	case nav.ViewProjects:
		page = m.renderProjects()
	case nav.ViewEducation:
		page = m.renderEducation()
	case nav.ViewSkills:
		page = m.renderSkills()
	case nav.ViewTerminal:
		page = m.renderTerminal()
	case nav.ViewSearch:
		page = m.renderSearch()
	default:
		page = m.renderProfile()
	}
	return m.styles.Content.Width(m.mainWidth()).Render(page)
}

func (m Model) renderFooter() string {
	if m.isLoading {
		return m.styles.Footer.Render(m.spinner.View() + " assistant is thinking...")
	}
	help := "1-5 views · tab cycle · / search · ctrl+a assistant · ctrl+v voice · q quit"
	switch m.focus {
	case focusSearch:
		help = "esc clear · enter keep results"
	case focusTerminal:
		help = "enter run · esc release · try 'help'"
	case focusAssistant:
		help = "enter send · up/down history · esc close panel"
	}
	return m.styles.Footer.Render(help)
}

// =============================================================================
// ASSISTANT PANE
// =============================================================================

func (m Model) renderAssistantPane() string {
	title := m.styles.Title.Render("Assistant")
	if !m.pipeline.Online() {
		title += m.styles.Muted.Render(" (offline replies)")
	}

	var status string
	if m.isLoading {
		status = m.spinner.View() + m.styles.Muted.Render(" thinking...")
	}

	inner := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.chatVP.View(),
		status,
		m.composer.View(),
	)
	return m.styles.Panel.Width(m.assistantPaneWidth() - 2).Render(inner)
}

func (m Model) renderChat() string {
	var sb strings.Builder
	for _, msg := range m.chat {
		switch msg.Role {
		case assistant.RoleUser:
			sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Primary).Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.Text))
			sb.WriteString("\n\n")
		default: // assistant
			header := m.styles.Bold.Foreground(m.styles.Theme.Accent).Render("Assistant") +
				m.styles.Muted.Render(" "+msg.Time.Format("15:04"))
			sb.WriteString(header + "\n")
			sb.WriteString(m.safeRenderMarkdown(msg.Text))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// safeRenderMarkdown renders assistant markdown with panic recovery;
// anything going wrong falls back to the raw text.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}
