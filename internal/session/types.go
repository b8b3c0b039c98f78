// Package session drives one end-to-end assessment interview: hardware
// acquisition, the question/answer loop, biometric sampling while recording,
// and the single scoring call that produces the final report.
package session

import (
	"errors"

	"github.com/skillsynth/skillsynth/internal/content"
)

// State is the controller's position in the interview flow. Progression is
// one-directional: intro, active, processing, report. Abort is reachable
// from intro and active.
type State int

const (
	StateIntro State = iota
	StateActive
	StateProcessing
	StateReport
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateActive:
		return "active"
	case StateProcessing:
		return "processing"
	case StateReport:
		return "report"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Kind selects the interview length.
type Kind int

const (
	// KindDaily is a one-question micro-task.
	KindDaily Kind = iota
	// KindAudit is the full five-step assessment.
	KindAudit
)

// TotalSteps returns the number of interview turns required before scoring.
func (k Kind) TotalSteps() int {
	if k == KindDaily {
		return 1
	}
	return 5
}

func (k Kind) String() string {
	if k == KindDaily {
		return "daily"
	}
	return "audit"
}

// BiometricSample is the live triple of delivery proxies shown while the
// student is speaking. Decorative telemetry only; never persisted.
type BiometricSample struct {
	Voice      int `json:"voice"`
	Gaze       int `json:"gaze"`
	Expression int `json:"expression"`
}

// Student identifies whose session this is and carries the inputs question
// generation needs.
type Student struct {
	ID            string
	Grade         string
	PastQuestions []string
}

var (
	// ErrInvalidState is returned when an operation is called outside the
	// state it belongs to.
	ErrInvalidState = errors.New("operation not valid in current session state")
	// ErrSynthesizing is returned when recording is requested while the next
	// question is still being prepared.
	ErrSynthesizing = errors.New("next question is still being prepared")
	// ErrAlreadyRecording is returned when recording is started twice.
	ErrAlreadyRecording = errors.New("already recording")
	// ErrNotRecording is returned when a stop is requested with no recording
	// in progress.
	ErrNotRecording = errors.New("not recording")
	// ErrEmptyTranscript rejects a step whose answer captured no speech. The
	// step is not lost; the student retries in place.
	ErrEmptyTranscript = errors.New("no speech captured, try again")
	// ErrAborted is returned when the session was cancelled.
	ErrAborted = errors.New("session aborted")
)

// EventType tags controller events pushed to the transport.
type EventType int

const (
	// EventQuestion announces the next question is ready.
	EventQuestion EventType = iota
	// EventReport announces the final feedback is available.
	EventReport
	// EventAborted announces the session was cancelled.
	EventAborted
)

func (t EventType) String() string {
	switch t {
	case EventQuestion:
		return "question"
	case EventReport:
		return "report"
	case EventAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Event is one controller notification.
type Event struct {
	Type     EventType
	Step     int
	Question string
	Feedback content.Feedback
}
