package assistant

import (
	"context"
	"fmt"
	"strings"

	"folio/internal/resume"
)

// Scripted is the offline responder: a keyword classifier over a small set
// of replies composed once, at construction, from the dataset. Everything
// it says is hand-authored from store content, so there is no hallucination
// risk and no network access, ever.
type Scripted struct {
	greeting  string
	projects  string
	skills    string
	contact   string
	education string
	hello     string
	fallback  string
}

// NewScripted composes the canned replies from the dataset.
func NewScripted(store *resume.Store) *Scripted {
	name := store.Profile.Name
	first := firstName(name)

	var projects strings.Builder
	fmt.Fprintf(&projects, "%s has worked on %d projects. The highlights:\n", first, len(store.Projects))
	for _, p := range store.Projects {
		fmt.Fprintf(&projects, "- **%s** (%s): %s\n", p.Title, p.Type, p.Description)
	}
	projects.WriteString("\nAsk about any of them, or press 2 to browse the projects view.")

	skills := fmt.Sprintf(
		"%s works across the stack: %s. The strongest areas are %s. Press 4 for the full chart.",
		first,
		strings.Join(store.SkillSubjects(), ", "),
		strings.Join(topSkills(store, 3), ", "),
	)

	contact := fmt.Sprintf(
		"You can reach %s at %s, call %s, or find them in %s.",
		first,
		store.Profile.Contact.Email,
		store.Profile.Contact.Phone,
		store.Profile.Contact.Location,
	)

	var education strings.Builder
	fmt.Fprintf(&education, "%s's education:\n", first)
	for _, e := range store.Education {
		fmt.Fprintf(&education, "- %s at %s (%s), %s\n", e.Degree, e.School, e.Years, e.Score)
	}

	return &Scripted{
		greeting: fmt.Sprintf(
			"Hi! I'm %s's portfolio assistant. Ask me about their projects, skills, education, or how to get in touch.",
			first),
		projects:  projects.String(),
		skills:    skills,
		contact:   contact,
		education: education.String(),
		hello: fmt.Sprintf(
			"Hello! Happy to talk about %s's work. Try asking about projects or skills.", first),
		fallback: fmt.Sprintf(
			"I can tell you about %s's projects, skills, education, or contact details. What would you like to know?",
			first),
	}
}

// Greeting is the fixed first transcript entry for a fresh session.
func (s *Scripted) Greeting() string {
	return s.greeting
}

// Reply classifies the input by substring and returns the matching canned
// reply. The checks run in priority order; "project" anywhere in the input
// always wins. Greetings are checked last because "hi" is a substring of
// too many ordinary words. Never returns an error.
func (s *Scripted) Reply(_ context.Context, userText string) (string, error) {
	in := strings.ToLower(userText)
	switch {
	case strings.Contains(in, "project"):
		return s.projects, nil
	case strings.Contains(in, "skill"), strings.Contains(in, "tech"):
		return s.skills, nil
	case strings.Contains(in, "contact"), strings.Contains(in, "email"):
		return s.contact, nil
	case strings.Contains(in, "education"), strings.Contains(in, "study"):
		return s.education, nil
	case strings.Contains(in, "hello"), strings.Contains(in, "hi"):
		return s.hello, nil
	default:
		return s.fallback, nil
	}
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

// topSkills returns the n highest-valued skill subjects, keeping chart
// order among equals.
func topSkills(store *resume.Store, n int) []string {
	picked := make([]bool, len(store.Skills))
	var out []string
	for len(out) < n && len(out) < len(store.Skills) {
		best := -1
		for i, sk := range store.Skills {
			if picked[i] {
				continue
			}
			if best < 0 || sk.Value > store.Skills[best].Value {
				best = i
			}
		}
		picked[best] = true
		out = append(out, store.Skills[best].Subject)
	}
	return out
}
