package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/profile"
)

// defaultSettleDelay gives trailing speech recognition results time to land
// after the recognizer is stopped.
const defaultSettleDelay = 800 * time.Millisecond

// ContentService is the slice of the adaptive content boundary the session
// depends on. Both methods degrade internally and never fail the session.
type ContentService interface {
	NextQuestion(ctx context.Context, history []content.Turn, step, totalSteps int, pastQuestions []string, grade, studentID string) string
	ScoreTranscript(ctx context.Context, history []content.Turn, studentID string) content.Feedback
}

// Config tunes controller timing. Zero values take production defaults.
type Config struct {
	SettleDelay    time.Duration
	SampleInterval time.Duration
}

// Controller owns one assessment interview. All methods are safe for
// concurrent use; interview steps themselves are strictly sequential.
type Controller struct {
	kind    Kind
	student Student
	capture Capture
	svc     ContentService
	cfg     Config

	events chan Event

	mu           sync.Mutex
	state        State
	guard        *streamGuard
	sampler      *sampler
	turns        []content.Turn
	asked        []string
	step         int
	question     string
	synthesizing bool
	recording    bool
	feedback     content.Feedback

	ctx    context.Context
	cancel context.CancelFunc
}

// NewController creates a controller in the intro state. Nothing is acquired
// until Start.
func NewController(kind Kind, student Student, capture Capture, svc ContentService, cfg Config) *Controller {
	return &Controller{
		kind:    kind,
		student: student,
		capture: capture,
		svc:     svc,
		cfg:     cfg,
		events:  make(chan Event, 32),
	}
}

// Events is the stream of controller notifications. The consumer must keep
// draining it for the lifetime of the session.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Start acquires the media hardware and, on success, moves to active and
// requests the first question. On failure the controller stays in intro with
// nothing acquired; the caller may retry.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIntro {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: start from %s", ErrInvalidState, state)
	}
	c.mu.Unlock()

	stream, err := c.capture.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire media hardware: %w", err)
	}

	c.mu.Lock()
	if c.state != StateIntro {
		// Aborted while the permission prompt was up.
		c.mu.Unlock()
		stream.Release()
		return ErrAborted
	}
	sctx, cancel := context.WithCancel(ctx)
	c.ctx = sctx
	c.cancel = cancel
	c.guard = newStreamGuard(stream)
	c.state = StateActive
	c.loadNextQuestionLocked()
	c.mu.Unlock()
	return nil
}

// loadNextQuestionLocked kicks off an asynchronous question fetch. While it
// is outstanding the synthesizing flag blocks StartRecording, which is the
// system's only backpressure: the student cannot speak before a question
// exists. Caller must hold c.mu.
func (c *Controller) loadNextQuestionLocked() {
	c.synthesizing = true
	step := c.step
	history := append([]content.Turn(nil), c.turns...)
	past := make([]string, 0, len(c.student.PastQuestions)+len(c.asked))
	past = append(past, c.student.PastQuestions...)
	past = append(past, c.asked...)
	ctx := c.ctx

	go func() {
		q := c.svc.NextQuestion(ctx, history, step, c.kind.TotalSteps(), past, c.student.Grade, c.student.ID)

		c.mu.Lock()
		if c.state != StateActive || ctx.Err() != nil {
			// Late response after abort; discard without touching state.
			c.mu.Unlock()
			return
		}
		c.question = q
		c.asked = append(c.asked, q)
		c.synthesizing = false
		c.mu.Unlock()

		c.emit(Event{Type: EventQuestion, Step: step, Question: q})
	}()
}

// StartRecording clears the transcript, starts the recognizer and launches
// the biometric sampling loop.
func (c *Controller) StartRecording() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return fmt.Errorf("%w: record from %s", ErrInvalidState, c.state)
	}
	if c.synthesizing {
		return ErrSynthesizing
	}
	if c.recording {
		return ErrAlreadyRecording
	}

	stream := c.guard.stream
	stream.ResetTranscript()
	if err := stream.StartRecognition(); err != nil {
		return fmt.Errorf("start recognition: %w", err)
	}
	c.recording = true
	c.sampler = newSampler(c.cfg.SampleInterval)
	c.sampler.start(c.ctx, stream)
	return nil
}

// StopRecordingAndAdvance stops the recognizer, waits the settle delay, then
// either rejects an empty answer in place (ErrEmptyTranscript, step
// retryable) or records the turn. After the final turn the hardware is
// released and the scoring request goes out.
func (c *Controller) StopRecordingAndAdvance() error {
	c.mu.Lock()
	if c.state != StateActive {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: stop from %s", ErrInvalidState, state)
	}
	if !c.recording {
		c.mu.Unlock()
		return ErrNotRecording
	}
	c.recording = false
	stream := c.guard.stream
	smp := c.sampler
	ctx := c.ctx
	c.mu.Unlock()

	smp.stop()
	if err := stream.StopRecognition(); err != nil {
		slog.Warn("stopping recognition", "error", err)
	}

	// Trailing recognition results may still land; wait before reading.
	settle := c.cfg.SettleDelay
	if settle <= 0 {
		settle = defaultSettleDelay
	}
	select {
	case <-time.After(settle):
	case <-ctx.Done():
		return ErrAborted
	}

	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return ErrAborted
	}

	transcript := strings.TrimSpace(stream.Transcript())
	if transcript == "" {
		c.mu.Unlock()
		return ErrEmptyTranscript
	}
	c.turns = append(c.turns, content.Turn{Question: c.question, Answer: transcript})

	if len(c.turns) < c.kind.TotalSteps() {
		c.step++
		stream.ResetTranscript()
		c.loadNextQuestionLocked()
		c.mu.Unlock()
		return nil
	}

	// Final step: hardware goes away before scoring starts.
	guard := c.guard
	c.state = StateProcessing
	history := append([]content.Turn(nil), c.turns...)
	c.mu.Unlock()

	guard.release()
	go c.score(ctx, history)
	return nil
}

// score issues the single scoring request. ScoreTranscript degrades to a
// fixed report internally, so once all turns are collected the session
// always reaches the report state.
func (c *Controller) score(ctx context.Context, history []content.Turn) {
	fb := c.svc.ScoreTranscript(ctx, history, c.student.ID)

	c.mu.Lock()
	if c.state != StateProcessing {
		c.mu.Unlock()
		return
	}
	c.feedback = fb
	c.state = StateReport
	c.mu.Unlock()

	c.emit(Event{Type: EventReport, Feedback: fb})
}

// Complete hands back the session outcome for blending into the profile.
// Only valid in the report state.
func (c *Controller) Complete() (profile.SessionOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReport {
		return profile.SessionOutcome{}, fmt.Errorf("%w: complete from %s", ErrInvalidState, c.state)
	}
	return profile.SessionOutcome{
		Scores:    c.feedback.Scores.Clamped(),
		Questions: append([]string(nil), c.asked...),
		Daily:     c.kind == KindDaily,
	}, nil
}

// Abort cancels the session and releases the hardware. Safe to call from any
// state, any number of times, including before Start.
func (c *Controller) Abort() {
	c.mu.Lock()
	if c.state == StateAborted {
		guard := c.guard
		c.mu.Unlock()
		guard.release()
		return
	}
	terminal := c.state == StateReport
	if !terminal {
		c.state = StateAborted
	}
	c.recording = false
	guard := c.guard
	smp := c.sampler
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if smp != nil {
		smp.stop()
	}
	guard.release()

	if !terminal {
		c.emit(Event{Type: EventAborted})
	}
}

// State reports the current FSM state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentQuestion returns the question in play and whether one is ready.
func (c *Controller) CurrentQuestion() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.question, !c.synthesizing && c.question != ""
}

// Step reports the zero-based index of the turn in progress.
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Recording reports whether the student is currently being captured.
func (c *Controller) Recording() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recording
}

// Biometrics returns the latest sample from the live sampling loop, or a
// zero sample when no recording has happened yet.
func (c *Controller) Biometrics() BiometricSample {
	c.mu.Lock()
	smp := c.sampler
	c.mu.Unlock()
	if smp == nil {
		return BiometricSample{}
	}
	return smp.snapshot()
}

// Feedback returns the final report once available.
func (c *Controller) Feedback() (content.Feedback, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feedback, c.state == StateReport
}

func (c *Controller) emit(e Event) {
	select {
	case c.events <- e:
	default:
		slog.Warn("session event dropped, consumer not draining", "type", e.Type)
	}
}
