// Package console implements the simulated shell shown in the terminal
// view. It is a stateless dispatcher: Execute takes the current scrollback
// and one input line and returns the new scrollback. The only state is the
// scrollback itself, owned by the caller.
package console

import (
	"fmt"
	"strings"

	"folio/internal/resume"
)

// Prompt prefixes every echoed input line in the transcript.
const Prompt = "visitor@folio:~$ "

// resetMarker is the single line the scrollback is replaced with on clear.
const resetMarker = "Session cleared. Type 'help' for commands."

// command pairs a name with its help text. The table order is the help
// output order.
type command struct {
	name string
	desc string
}

var commands = []command{
	{"help", "list available commands"},
	{"ls", "list projects"},
	{"whoami", "show profile summary"},
	{"skills", "list skill subjects"},
	{"contact", "show contact details"},
	{"clear", "reset the terminal"},
}

// Interpreter executes terminal commands against the resume dataset. It
// never returns an error: unrecognized input becomes a transcript line.
type Interpreter struct {
	store *resume.Store
}

func New(store *resume.Store) *Interpreter {
	return &Interpreter{store: store}
}

// Banner returns the initial scrollback for a fresh terminal session.
func (it *Interpreter) Banner() []string {
	return []string{
		fmt.Sprintf("folio shell: portfolio of %s", it.store.Profile.Name),
		"Type 'help' to see available commands.",
		"",
	}
}

// Execute runs one input line against the current scrollback and returns
// the new scrollback. The raw line is echoed prompt-prefixed before any
// output, so the transcript reads back like a real session. Dispatch is on
// the first whitespace-separated word, lowercased; arguments are ignored.
func (it *Interpreter) Execute(history []string, line string) []string {
	out := make([]string, len(history), len(history)+8)
	copy(out, history)
	out = append(out, Prompt+line)

	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return out
	}

	switch fields[0] {
	case "help":
		out = append(out, "Available commands:")
		for _, c := range commands {
			out = append(out, fmt.Sprintf("  %-8s %s", c.name, c.desc))
		}
	case "ls":
		for i, p := range it.store.Projects {
			out = append(out, fmt.Sprintf("[%d] %s  (%s)", i, p.Title, p.Type))
		}
	case "whoami":
		out = append(out,
			it.store.Profile.Name,
			it.store.Profile.Title,
			it.store.Profile.Summary,
		)
	case "skills":
		for _, sk := range it.store.Skills {
			out = append(out, fmt.Sprintf("%-18s %d/%d", sk.Subject, sk.Value, sk.Max))
		}
	case "contact":
		out = append(out,
			"email:    "+it.store.Profile.Contact.Email,
			"phone:    "+it.store.Profile.Contact.Phone,
			"location: "+it.store.Profile.Contact.Location,
		)
	case "clear":
		return []string{resetMarker}
	default:
		out = append(out, fmt.Sprintf("command not found: %s. Type 'help' for available commands.", fields[0]))
	}
	return out
}
