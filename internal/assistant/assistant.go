// Package assistant implements the conversational panel's response
// pipeline. A Responder produces reply text for one user utterance; the
// Pipeline wraps whichever responder is active into ChatMessages and
// guarantees that the online path degrades to the scripted one instead of
// surfacing errors.
package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Roles for ChatMessage. The pipeline is the sole writer of assistant
// entries; the interface appends user entries before calling Respond.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in the session-scoped chat transcript. The
// transcript only grows; it is never reordered and is cleared only by
// restarting the program.
type ChatMessage struct {
	ID   string
	Role string
	Text string
	Time time.Time
}

// NewUserMessage wraps raw input for the transcript.
func NewUserMessage(text string) ChatMessage {
	return ChatMessage{
		ID:   uuid.NewString(),
		Role: RoleUser,
		Text: text,
		Time: time.Now(),
	}
}

// NewAssistantMessage wraps assistant-authored text. Outside the pipeline
// only the voice stub's status notices use this.
func NewAssistantMessage(text string) ChatMessage {
	return ChatMessage{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
		Text: text,
		Time: time.Now(),
	}
}

// Responder turns one user utterance into reply text. Implementations:
// Scripted (deterministic, never fails) and Gemini (live API call).
type Responder interface {
	Reply(ctx context.Context, userText string) (string, error)
}
