package session

import (
	"context"
	"sync"
)

// Capture acquires the session's media hardware. Exactly one stream may be
// held per session; acquisition failure must leave nothing acquired.
type Capture interface {
	Acquire(ctx context.Context) (Stream, error)
}

// Stream is an acquired camera+microphone stream with an attached speech
// recognizer and signal taps for the sampling loop.
type Stream interface {
	// StartRecognition begins transcript accumulation.
	StartRecognition() error
	// StopRecognition halts transcript accumulation; results already in
	// flight may still land until the settle delay expires.
	StopRecognition() error
	// Transcript returns the text accumulated since the last reset.
	Transcript() string
	// ResetTranscript clears the accumulated text.
	ResetTranscript()
	// AudioLevel is the current mean audio amplitude.
	AudioLevel() float64
	// FrameMotion is the current frame-to-frame pixel difference magnitude.
	FrameMotion() float64
	// Release frees the hardware. Must be safe to call once.
	Release() error
}

// streamGuard wraps a Stream so release happens exactly once no matter how
// many exit paths reach it.
type streamGuard struct {
	stream Stream
	once   sync.Once
}

func newStreamGuard(s Stream) *streamGuard {
	return &streamGuard{stream: s}
}

func (g *streamGuard) release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		g.stream.Release()
	})
}
