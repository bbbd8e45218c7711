package assistant

import (
	"strings"

	"folio/internal/resume"
)

// preamble constrains the model: third-person persona, short answers,
// terminal-friendly formatting, and no inventing facts beyond the context.
const preamble = `You are the portfolio assistant for the person described in the RESUME
section below. Answer visitor questions about their background, projects,
skills, and education.

Rules:
- Answer only from the RESUME section. If the answer is not there, say so
  and suggest asking about projects, skills, education, or contact details.
- Keep replies under 120 words.
- Plain sentences and simple markdown lists only. No headers, no tables,
  no emojis.
- Refer to the person in the third person by first name.`

// BuildPrompt assembles the single-shot prompt: instruction preamble, the
// serialized dataset, then the user's question.
func BuildPrompt(store *resume.Store, userText string) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n# RESUME\n\n")
	b.WriteString(store.ContextBlob())
	b.WriteString("\n# QUESTION\n\n")
	b.WriteString(userText)
	return b.String()
}
