package console

import (
	"strings"
	"testing"

	"folio/internal/resume"
)

func testInterpreter() *Interpreter {
	return New(&resume.Store{
		Profile: resume.Profile{
			Name:    "Test Person",
			Title:   "Engineer",
			Summary: "Builds things.",
			Contact: resume.Contact{
				Email:    "test@example.com",
				Phone:    "+1 555 0100",
				Location: "Springfield",
			},
		},
		Projects: []resume.Project{
			{Title: "Alpha System", Type: "Demo"},
			{Title: "Beta Pipeline", Type: "Data"},
			{Title: "Gamma Portal", Type: "Web"},
		},
		Skills: []resume.SkillMetric{
			{Subject: "Go", Value: 90, Max: 100},
			{Subject: "Kafka", Value: 70, Max: 100},
		},
	})
}

func TestExecute_EchoesInputFirst(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "WhoAmI")

	if len(out) < 2 {
		t.Fatalf("want echo plus output, got %d lines", len(out))
	}
	if out[0] != Prompt+"WhoAmI" {
		t.Errorf("first appended line should echo the raw input, got %q", out[0])
	}
}

func TestExecute_Clear(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	history := []string{"old line one", "old line two", "old line three"}

	for _, input := range []string{"clear", "CLEAR", "Clear"} {
		out := it.Execute(history, input)
		if len(out) != 1 {
			t.Errorf("Execute(%q): want exactly 1 line, got %d", input, len(out))
		}
		if out[0] != resetMarker {
			t.Errorf("Execute(%q): want the reset marker, got %q", input, out[0])
		}
	}
}

func TestExecute_LsLineCount(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "ls")

	wantLines := len(it.store.Projects) + 1
	if len(out) != wantLines {
		t.Fatalf("ls should append exactly %d lines (echo + one per project), got %d", wantLines, len(out))
	}
	for i, p := range it.store.Projects {
		if !strings.Contains(out[i+1], p.Title) || !strings.Contains(out[i+1], p.Type) {
			t.Errorf("ls line %d should mention %q (%s), got %q", i+1, p.Title, p.Type, out[i+1])
		}
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "frobnicate")

	if len(out) != 2 {
		t.Fatalf("unknown command should append exactly 2 lines (echo + error), got %d", len(out))
	}
	if !strings.Contains(out[1], "frobnicate") {
		t.Errorf("error line should name the offending command, got %q", out[1])
	}
	if !strings.Contains(out[1], "help") {
		t.Errorf("error line should point to help, got %q", out[1])
	}
}

func TestExecute_ArgumentsIgnored(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "ls -la")

	if len(out) != len(it.store.Projects)+1 {
		t.Errorf("ls with arguments should still run ls, got %d lines", len(out))
	}
}

func TestExecute_EmptyLineEchoesOnly(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute([]string{"previous"}, "   ")

	if len(out) != 2 {
		t.Fatalf("empty input should append only the echo line, got %d lines total", len(out))
	}
}

func TestExecute_Help(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "help")
	joined := strings.Join(out, "\n")

	for _, c := range commands {
		if !strings.Contains(joined, c.name) {
			t.Errorf("help output should list %q", c.name)
		}
	}
}

func TestExecute_Whoami(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "whoami")
	joined := strings.Join(out, "\n")

	for _, want := range []string{"Test Person", "Engineer", "Builds things."} {
		if !strings.Contains(joined, want) {
			t.Errorf("whoami output should contain %q", want)
		}
	}
}

func TestExecute_Skills(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	out := it.Execute(nil, "skills")

	if len(out) != len(it.store.Skills)+1 {
		t.Fatalf("skills should append one line per subject, got %d lines", len(out))
	}
	joined := strings.Join(out, "\n")
	for _, sk := range it.store.Skills {
		if !strings.Contains(joined, sk.Subject) {
			t.Errorf("skills output should contain %q", sk.Subject)
		}
	}
}

func TestExecute_Contact(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	joined := strings.Join(it.Execute(nil, "contact"), "\n")

	for _, want := range []string{"test@example.com", "+1 555 0100", "Springfield"} {
		if !strings.Contains(joined, want) {
			t.Errorf("contact output should contain %q", want)
		}
	}
}

func TestExecute_DoesNotMutateInputHistory(t *testing.T) {
	t.Parallel()

	it := testInterpreter()
	history := make([]string, 0, 16)
	history = append(history, "seed")

	_ = it.Execute(history, "ls")
	_ = it.Execute(history, "whoami")

	if len(history) != 1 || history[0] != "seed" {
		t.Errorf("Execute must not mutate the caller's history, got %v", history)
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	banner := testInterpreter().Banner()
	if len(banner) == 0 {
		t.Fatal("banner should not be empty")
	}
	if !strings.Contains(strings.Join(banner, "\n"), "help") {
		t.Error("banner should point to help")
	}
}
