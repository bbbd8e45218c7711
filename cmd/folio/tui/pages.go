package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/cmd/folio/ui"
	"folio/internal/resume"
)

// =============================================================================
// PAGES
// =============================================================================
// One renderer per view. All of them are pure reads of the dataset plus
// current model state; nothing here mutates.

func (m Model) renderProfile() string {
	p := m.store.Profile
	var sb strings.Builder

	sb.WriteString(ui.Logo(m.styles) + "\n")
	sb.WriteString(m.styles.Title.Render(p.Name) + "\n")
	sb.WriteString(m.styles.Subtitle.Render(p.Title) + "\n\n")
	sb.WriteString(m.styles.Body.Width(m.mainWidth() - 6).Render(p.Summary))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Bold.Render("Contact") + "\n")
	sb.WriteString(m.styles.Muted.Render("  email    ") + p.Contact.Email + "\n")
	sb.WriteString(m.styles.Muted.Render("  phone    ") + p.Contact.Phone + "\n")
	sb.WriteString(m.styles.Muted.Render("  location ") + p.Contact.Location + "\n")
	for _, l := range p.Contact.Links {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %-8s ", strings.ToLower(l.Label))) + l.URL + "\n")
	}
	sb.WriteString(m.styles.Muted.Render("  press o to open a mail draft") + "\n\n")

	if len(m.store.Certificates) > 0 {
		sb.WriteString(m.styles.Bold.Render("Certificates") + "\n")
		for _, c := range m.store.Certificates {
			sb.WriteString("  " + m.styles.Badge.Render(c.Name) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(m.store.Interests) > 0 {
		sb.WriteString(m.styles.Bold.Render("Interests") + "\n  ")
		sb.WriteString(m.styles.Muted.Render(strings.Join(m.store.Interests, " · ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderProjects() string {
	var cards []string
	for _, p := range m.store.Projects {
		cards = append(cards, m.renderProjectCard(p))
	}
	return strings.Join(cards, "\n")
}

func (m Model) renderProjectCard(p resume.Project) string {
	header := m.styles.Bold.Render(p.Title) + "  " + m.styles.Badge.Render(p.Type)
	desc := m.styles.Body.Width(m.mainWidth() - 10).Render(p.Description)
	tech := m.styles.Muted.Render(strings.Join(p.Tech, " · "))
	return m.styles.Panel.Width(m.mainWidth() - 6).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, desc, tech))
}

func (m Model) renderEducation() string {
	table := ui.NewTable("Education", "Degree", "School", "Years", "Score")
	for _, e := range m.store.Education {
		table.AddRow(e.Degree, e.School, e.Years, e.Score)
	}

	var sb strings.Builder
	sb.WriteString(table.View(m.styles))
	for _, e := range m.store.Education {
		if len(e.Details) == 0 {
			continue
		}
		sb.WriteString("\n" + m.styles.Bold.Render(e.Degree) + "\n")
		for _, d := range e.Details {
			sb.WriteString(m.styles.Muted.Render("  - "+d) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderSkills() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Skills") + "\n")
	for _, sk := range m.store.Skills {
		pct := float64(sk.Value) / float64(sk.Max)
		sb.WriteString(fmt.Sprintf("%-20s %s %3d\n",
			sk.Subject, m.skillBar.ViewAs(pct), sk.Value))
	}
	return sb.String()
}

func (m Model) renderTerminal() string {
	var sb strings.Builder

	// Show as much scrollback as fits above the input and the feed.
	lines := m.termHistory
	avail := m.height - 12 - len(m.activity)
	if avail > 0 && len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	for _, l := range lines {
		sb.WriteString(m.styles.Body.Render(l) + "\n")
	}

	sb.WriteString(m.termInput.View() + "\n")

	if len(m.activity) > 0 {
		sb.WriteString("\n" + m.styles.RenderDivider(min(40, m.mainWidth()-6)) + "\n")
		for _, a := range m.activity {
			sb.WriteString(m.styles.Muted.Render(a) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderSearch() string {
	if !m.results.Active() {
		return m.styles.Muted.Render("Press / and start typing to search projects, education, and skills.")
	}
	if m.results.Empty() {
		return m.styles.Muted.Render(fmt.Sprintf("No matches for %q. Try a technology, a school, or a project name.", m.results.Query))
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(
		fmt.Sprintf("%d matches for %q", m.results.Total(), m.results.Query)) + "\n")

	if len(m.results.Projects) > 0 {
		sb.WriteString(m.styles.Bold.Render("Projects") + "\n")
		for _, p := range m.results.Projects {
			sb.WriteString(m.renderProjectCard(p) + "\n")
		}
	}

	if len(m.results.Education) > 0 {
		sb.WriteString(m.styles.Bold.Render("Education") + "\n")
		for _, e := range m.results.Education {
			sb.WriteString(fmt.Sprintf("  %s, %s (%s)\n", e.Degree, e.School, e.Years))
		}
	}

	if len(m.results.Skills) > 0 {
		sb.WriteString(m.styles.Bold.Render("Skills") + "\n")
		for _, sk := range m.results.Skills {
			pct := float64(sk.Value) / float64(sk.Max)
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", sk.Subject, m.skillBar.ViewAs(pct)))
		}
	}
	return sb.String()
}
