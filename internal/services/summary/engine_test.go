package summary

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionary-ai/medassist/internal/domain"
	"github.com/visionary-ai/medassist/internal/services/taxonomy"
)

// fakeScheduler captures the armed callback so tests can fire the debounce
// timer deterministically.
type fakeScheduler struct {
	mu       sync.Mutex
	armCount int
	pending  func()
}

func (s *fakeScheduler) Arm(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armCount++
	s.pending = fn
}

func (s *fakeScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

func (s *fakeScheduler) Fire() {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *fakeScheduler) Arms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armCount
}

// fakeProvider returns a canned response and counts requests. An optional
// release channel keeps requests in flight until the test lets them finish.
type fakeProvider struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
	release  chan struct{}
}

func (p *fakeProvider) GetCompletion(ctx context.Context, model, prompt string) (string, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.release != nil {
		<-p.release
	}
	return p.response, p.err
}

func (p *fakeProvider) HealthCheck(ctx context.Context) error { return nil }

func (p *fakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func assistantMsg(text string) domain.Message {
	now := time.Now()
	return domain.Message{ID: "a", Role: domain.MessageRoleAssistant, Content: text, CreatedAt: &now}
}

func userMsg(text string) domain.Message {
	now := time.Now()
	return domain.Message{ID: "u", Role: domain.MessageRoleUser, Content: text, CreatedAt: &now}
}

func newTestEngine(t *testing.T, provider *fakeProvider) (*Engine, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	eng, err := NewEngine(provider, sched, DefaultConfig(), &noopLogger{})
	require.NoError(t, err)
	return eng, sched
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

var longAssistantText = "Your rash looks like eczema. Avoid fragrances and harsh soaps. See a dermatologist if it spreads."

func TestObserveUnchangedSequenceIsIdempotent(t *testing.T) {
	provider := &fakeProvider{response: `{"diagnosis":"Eczema","symptoms":[],"causes":[],"treatments":[],"specialty":"Dermatology"}`}
	eng, sched := newTestEngine(t, provider)

	msgs := []domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)}
	eng.Observe(msgs)
	sched.Fire()
	assert.Equal(t, 1, provider.Calls())

	// Same length again: the observed-count gate suppresses any new work.
	eng.Observe(msgs)
	assert.Equal(t, 1, sched.Arms())
	assert.Equal(t, 1, provider.Calls())
}

func TestQualifyingAppendsResetDebounce(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)})
	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText), assistantMsg("Anything else?")})

	assert.Equal(t, 2, sched.Arms(), "each qualifying append re-arms the timer")
	sched.Fire()
	assert.Equal(t, 1, provider.Calls(), "bursts collapse into one generation")
}

func TestAtMostOneGenerationInFlight(t *testing.T) {
	provider := &fakeProvider{
		response: `{"diagnosis":"Eczema","symptoms":[],"causes":[],"treatments":[],"specialty":"Dermatology"}`,
		release:  make(chan struct{}),
	}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)})

	done := make(chan struct{})
	go func() {
		sched.Fire()
		close(done)
	}()

	// Wait until the request is actually in flight.
	require.Eventually(t, func() bool { return provider.Calls() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, StateGenerating, eng.State())

	// A second qualifying trigger fires while generating: dropped, not queued.
	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText), assistantMsg("More advice here.")})
	sched.Fire()
	assert.Equal(t, 1, provider.Calls())

	close(provider.release)
	<-done
	assert.Equal(t, StateIdle, eng.State())
	assert.Equal(t, 1, provider.Calls())
}

func TestTrailingUserMessageSuppressesGeneration(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg(longAssistantText), userMsg("and my arm too")})

	assert.Equal(t, 0, sched.Arms(), "no generation while the user is actively sending")
}

func TestUserReplyDuringDebounceCancelsPendingFire(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)})
	require.Equal(t, 1, sched.Arms())

	// The user answers within the debounce window: the armed fire must not
	// summarize the pre-reply snapshot.
	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText), userMsg("also my arm")})
	sched.Fire()

	assert.Equal(t, 0, provider.Calls())
	assert.Equal(t, StateIdle, eng.State())

	// A later qualifying append still works normally.
	eng.Observe([]domain.Message{
		assistantMsg("Hi"), assistantMsg(longAssistantText),
		userMsg("also my arm"), assistantMsg(longAssistantText),
		assistantMsg(longAssistantText), assistantMsg(longAssistantText),
		assistantMsg(longAssistantText), assistantMsg(longAssistantText),
	})
	sched.Fire()
	assert.Equal(t, 1, provider.Calls())
}

// replacedTimerScheduler models a timer that had already fired when Arm
// replaced it: every armed callback is retained and delivered.
type replacedTimerScheduler struct {
	mu    sync.Mutex
	fires []func()
}

func (s *replacedTimerScheduler) Arm(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fires = append(s.fires, fn)
}

func (s *replacedTimerScheduler) Cancel() {}

func TestStaleFireAfterRearmDoesNotRegenerate(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	sched := &replacedTimerScheduler{}
	eng, err := NewEngine(provider, sched, DefaultConfig(), &noopLogger{})
	require.NoError(t, err)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)})
	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText), assistantMsg("Anything else?")})

	require.Len(t, sched.fires, 2)
	sched.fires[0]()
	sched.fires[1]()

	assert.Equal(t, 1, provider.Calls(), "an unchanged sequence never generates twice")
	assert.Equal(t, StateIdle, eng.State())
}

func TestSingleMessageNeverQualifies(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg(longAssistantText)})
	assert.Equal(t, 0, sched.Arms())
}

func TestShortTranscriptAbortsSilently(t *testing.T) {
	provider := &fakeProvider{response: `{}`}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg("Hello there")})
	sched.Fire()

	assert.Equal(t, 0, provider.Calls(), "below the content threshold no request is issued")
	assert.Equal(t, StateIdle, eng.State())
	assert.Equal(t, domain.DefaultSummary(), eng.Summary())
}

func TestImageMarkersExcludedFromTranscript(t *testing.T) {
	msgs := []domain.Message{
		assistantMsg("First line of advice."),
		assistantMsg(domain.ImagePlaceholder),
		assistantMsg("Second line of advice."),
	}
	assert.Equal(t, "First line of advice.\nSecond line of advice.", BuildTranscript(msgs))
}

func TestProviderFailureDegradesToDefaultSummary(t *testing.T) {
	provider := &fakeProvider{err: context.DeadlineExceeded}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)})
	sched.Fire()

	assert.Equal(t, domain.DefaultSummary(), eng.Summary())
	assert.Equal(t, StateIdle, eng.State(), "no error state is retained between runs")
}

func TestCloseDiscardsLateResult(t *testing.T) {
	provider := &fakeProvider{
		response: `{"diagnosis":"Eczema","symptoms":[],"causes":[],"treatments":[],"specialty":"Dermatology"}`,
		release:  make(chan struct{}),
	}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{assistantMsg("Hi"), assistantMsg(longAssistantText)})

	done := make(chan struct{})
	go func() {
		sched.Fire()
		close(done)
	}()
	require.Eventually(t, func() bool { return provider.Calls() == 1 }, time.Second, time.Millisecond)

	eng.Close()
	close(provider.release)
	<-done

	assert.Equal(t, domain.DefaultSummary(), eng.Summary(), "result arriving after teardown is discarded")
}

func TestGenerationYieldsSpecialtyResolvableInTaxonomy(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n" +
			`{"diagnosis":"Eczema","symptoms":["rash"],"causes":["fragrances"],"treatments":["avoid fragrances"],"specialty":"Dermatology"}` +
			"\n```",
	}
	eng, sched := newTestEngine(t, provider)

	eng.Observe([]domain.Message{
		assistantMsg("Hi"),
		assistantMsg("Your rash looks like eczema. Avoid fragrances. See a dermatologist."),
	})
	sched.Fire()
	require.Equal(t, 1, provider.Calls())

	got := eng.Summary()
	assert.Equal(t, "Eczema", got.Diagnosis)
	require.True(t, got.HasSpecialty())

	matcher, err := taxonomy.NewMatcher(taxonomy.Build(taxonomy.DefaultRecords()), map[string]string{
		domain.ChatCategorySkin: "Dermatology",
	})
	require.NoError(t, err)
	match, err := matcher.Resolve(got.Specialty, domain.ChatCategorySkin)
	require.NoError(t, err)
	assert.Equal(t, "Dermatology", match.Classification)
}
