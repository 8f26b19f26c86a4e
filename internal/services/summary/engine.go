// File: internal/services/summary/engine.go
package summary

import (
	"context"
	"sync"

	"github.com/visionary-ai/medassist/internal/domain"
	"github.com/visionary-ai/medassist/internal/services/ai"
)

// Engine watches one conversation's append-only message stream and
// periodically distills it into a ConversationSummary. One engine per
// conversation; its state flag is the sole guard keeping generations from
// overlapping.
type Engine struct {
	provider  ai.CompletionProvider
	scheduler Scheduler
	config    *Config
	logger    Logger

	mu                sync.Mutex
	state             State
	lastObservedCount int
	pendingSnapshot   []domain.Message
	pendingCount      int
	current           domain.ConversationSummary
	closed            bool
}

// NewEngine constructs an engine around the injected collaborators. The
// summary starts at the default until a generation succeeds.
func NewEngine(provider ai.CompletionProvider, scheduler Scheduler, config *Config, logger Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, &SummaryError{Type: ErrTypeConfig, Operation: "new_engine", Message: err.Error()}
	}
	return &Engine{
		provider:  provider,
		scheduler: scheduler,
		config:    config,
		logger:    logger,
		current:   domain.DefaultSummary(),
	}, nil
}

// Summary returns the current summary. It is replaced wholesale on every
// successful generation, never partially merged.
func (e *Engine) Summary() domain.ConversationSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// State exposes the engine lifecycle position for observability.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Observe feeds the engine a fresh ordered snapshot of the conversation.
// Called on every append; re-renders and deletions never re-trigger work
// because only a growing message count qualifies. A qualifying snapshot
// re-arms the debounce timer, collapsing bursts into one generation.
func (e *Engine) Observe(messages []domain.Message) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	count := len(messages)
	if count <= e.lastObservedCount {
		return
	}

	if !qualifies(messages, e.config.TrailingWindow) {
		// The sequence grew but no longer qualifies: the user is sending
		// again. A pending fire would summarize the pre-reply snapshot, so
		// cancel it; the next qualifying append re-arms.
		if e.state == StateDebouncing {
			e.scheduler.Cancel()
			e.state = StateIdle
			e.logger.Debug("debounce cancelled by user activity", "message_count", count)
		}
		return
	}

	e.pendingSnapshot = append([]domain.Message(nil), messages...)
	e.pendingCount = count
	if e.state == StateIdle {
		e.state = StateDebouncing
	}
	e.scheduler.Arm(e.config.DebounceInterval, e.onTimerFire)
	e.logger.Debug("debounce armed", "message_count", count, "state", e.state.String())
}

// Close tears the engine down. The pending timer is cancelled and the result
// of any in-flight generation is discarded on arrival.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.scheduler.Cancel()
}

// qualifies applies the triggering rule: at least one assistant message with
// real text, at least two messages total, and no user-authored message in
// the trailing window (the user is still typing otherwise).
func qualifies(messages []domain.Message, trailingWindow int) bool {
	if len(messages) < 2 {
		return false
	}

	hasAssistantContent := false
	for _, m := range messages {
		if m.IsAssistant() && !m.IsImageMarker() && m.Content != "" {
			hasAssistantContent = true
			break
		}
	}
	if !hasAssistantContent {
		return false
	}

	start := len(messages) - trailingWindow
	if start < 0 {
		start = 0
	}
	for _, m := range messages[start:] {
		if m.Role == domain.MessageRoleUser {
			return false
		}
	}
	return true
}

// onTimerFire moves the engine into Generating, unless a generation is
// already in flight, in which case the fire is dropped rather than queued.
func (e *Engine) onTimerFire() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if e.state == StateGenerating {
		e.logger.Debug("debounce fired while generating; dropped")
		e.mu.Unlock()
		return
	}
	// A timer that had already fired when Arm replaced it still delivers its
	// callback. Once the pending sequence has been observed, such a stale
	// fire would regenerate the identical snapshot, so drop it.
	if e.pendingCount <= e.lastObservedCount {
		e.logger.Debug("stale debounce fire; dropped", "pending_count", e.pendingCount)
		e.state = StateIdle
		e.mu.Unlock()
		return
	}
	e.state = StateGenerating
	snapshot := e.pendingSnapshot
	count := e.pendingCount
	e.mu.Unlock()

	e.generate(snapshot, count)
}

// generate issues the single in-flight request and applies the outcome.
// Every failure path degrades to the default summary; nothing propagates to
// callers.
func (e *Engine) generate(snapshot []domain.Message, count int) {
	transcript := BuildTranscript(snapshot)
	if len(transcript) < e.config.MinContentLength {
		e.logger.Debug("not enough content to summarize", "length", len(transcript))
		e.finish(nil, count, false)
		return
	}

	// No deadline of our own: a hung request keeps the engine in
	// Generating, deferring further triggers until it resolves.
	raw, err := e.provider.GetCompletion(context.Background(), e.config.Model, BuildPrompt(transcript))
	if err != nil {
		e.logger.Warn("summary generation failed", "error", err)
		fallback := domain.DefaultSummary()
		e.finish(&fallback, count, true)
		return
	}

	parsed, parseErr := ParseResponse(raw)
	if parseErr != nil {
		e.logger.Warn("malformed summary response", "error", parseErr)
	}
	e.finish(&parsed, count, true)
}

// finish clears the generating state and updates the observed count to the
// value captured when generation was triggered. A non-nil result replaces
// the stored summary atomically; results arriving after Close are discarded.
func (e *Engine) finish(result *domain.ConversationSummary, count int, generated bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if result != nil {
		e.current = *result
	}
	e.state = StateIdle
	e.lastObservedCount = count
	if generated {
		e.logger.Info("summary updated", "observed_messages", count)
	}
}
