package resume

import (
	"fmt"
	"strings"
)

// ContextBlob serializes the whole dataset into the plain-text form fed to
// the language model as grounding context. Sections mirror the views of the
// interface so replies can reference what the user is looking at. The output
// is deterministic for a given store.
func (s *Store) ContextBlob() string {
	var b strings.Builder

	b.WriteString("## PROFILE\n")
	fmt.Fprintf(&b, "Name: %s\nTitle: %s\nLocation: %s\nEmail: %s\nPhone: %s\n",
		s.Profile.Name, s.Profile.Title, s.Profile.Contact.Location,
		s.Profile.Contact.Email, s.Profile.Contact.Phone)
	for _, l := range s.Profile.Contact.Links {
		fmt.Fprintf(&b, "%s: %s\n", l.Label, l.URL)
	}
	fmt.Fprintf(&b, "Summary: %s\n", s.Profile.Summary)

	b.WriteString("\n## PROJECTS\n")
	for i, p := range s.Projects {
		fmt.Fprintf(&b, "%d. %s (%s): %s [tech: %s]\n",
			i+1, p.Title, p.Type, p.Description, strings.Join(p.Tech, ", "))
	}

	b.WriteString("\n## EDUCATION\n")
	for _, e := range s.Education {
		fmt.Fprintf(&b, "- %s, %s (%s), %s\n", e.Degree, e.School, e.Years, e.Score)
		for _, d := range e.Details {
			fmt.Fprintf(&b, "  * %s\n", d)
		}
	}

	b.WriteString("\n## CERTIFICATES\n")
	for _, c := range s.Certificates {
		fmt.Fprintf(&b, "- %s\n", c.Name)
	}

	b.WriteString("\n## SKILLS\n")
	for _, sk := range s.Skills {
		fmt.Fprintf(&b, "- %s: %d/%d\n", sk.Subject, sk.Value, sk.Max)
	}

	b.WriteString("\n## INTERESTS\n")
	b.WriteString(strings.Join(s.Interests, ", "))
	b.WriteString("\n")

	return b.String()
}

// SkillSubjects returns the skill names in chart order.
func (s *Store) SkillSubjects() []string {
	subjects := make([]string, len(s.Skills))
	for i, sk := range s.Skills {
		subjects[i] = sk.Subject
	}
	return subjects
}
