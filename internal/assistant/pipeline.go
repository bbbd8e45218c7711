package assistant

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Defaults for the online path. The fallback delay keeps the degraded path
// feeling like a normal "thinking" pause instead of an instant canned
// answer right after a long network stall.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultFallbackDelay = 1200 * time.Millisecond
)

// Pipeline turns user utterances into assistant ChatMessages. The mode is
// fixed at construction: offline pipelines have a nil live responder and
// answer from the scripted one; online pipelines try the live responder
// first and substitute the scripted answer on any failure. Callers never
// see an error.
type Pipeline struct {
	scripted *Scripted
	live     Responder
	timeout  time.Duration
	delay    time.Duration
	log      *zap.Logger
	group    singleflight.Group
}

// Option adjusts pipeline behavior, mainly for tests.
type Option func(*Pipeline)

// WithFallbackDelay overrides the simulated processing pause taken before
// a degraded reply. Tests pass zero.
func WithFallbackDelay(d time.Duration) Option {
	return func(p *Pipeline) { p.delay = d }
}

// WithTimeout overrides the per-call deadline on the live responder.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// NewPipeline builds a pipeline around the scripted responder and an
// optional live one. live == nil selects offline mode for the life of the
// process.
func NewPipeline(scripted *Scripted, live Responder, log *zap.Logger, opts ...Option) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Pipeline{
		scripted: scripted,
		live:     live,
		timeout:  DefaultTimeout,
		delay:    DefaultFallbackDelay,
		log:      log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Online reports whether a live responder is configured.
func (p *Pipeline) Online() bool {
	return p.live != nil
}

// Greeting returns the fixed opening message for a fresh transcript.
func (p *Pipeline) Greeting() ChatMessage {
	return NewAssistantMessage(p.scripted.Greeting())
}

// Respond produces the assistant message for one utterance. It blocks for
// at most the live timeout plus the fallback delay, and always returns a
// renderable message. The UI enforces single-flight by disabling input
// while a call is pending; the singleflight group additionally coalesces
// identical concurrent sends from scripted callers like the CLI.
func (p *Pipeline) Respond(ctx context.Context, userText string) ChatMessage {
	body, _, _ := p.group.Do(userText, func() (interface{}, error) {
		return p.reply(ctx, userText), nil
	})
	return NewAssistantMessage(body.(string))
}

func (p *Pipeline) reply(ctx context.Context, userText string) string {
	if p.live != nil {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		text, err := p.live.Reply(callCtx, userText)
		cancel()
		if err == nil {
			return text
		}
		p.log.Warn("live responder failed, degrading to scripted reply",
			zap.Error(err))
		p.pause(ctx)
	}
	text, _ := p.scripted.Reply(ctx, userText) // scripted never errors
	return text
}

// pause sleeps for the fallback delay unless the context ends first.
func (p *Pipeline) pause(ctx context.Context) {
	if p.delay <= 0 {
		return
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
