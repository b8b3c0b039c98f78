// Package ws exposes the assessment session over a WebSocket connection.
// The browser supplies permission grants, audio levels, frame motion and
// speech transcripts; the server drives the session controller and pushes
// questions, live biometrics and the final report.
package ws

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/skillsynth/skillsynth/internal/session"
)

// clientStream is the session.Stream fed by client messages. The browser
// owns the real hardware; this mirror carries its signals server-side.
type clientStream struct {
	mu          sync.Mutex
	transcript  strings.Builder
	audioLevel  float64
	frameMotion float64
	recognizing bool
	released    bool
}

func (s *clientStream) StartRecognition() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return fmt.Errorf("stream released")
	}
	s.recognizing = true
	return nil
}

func (s *clientStream) StopRecognition() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recognizing = false
	return nil
}

func (s *clientStream) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.String()
}

func (s *clientStream) ResetTranscript() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.Reset()
}

func (s *clientStream) AudioLevel() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audioLevel
}

func (s *clientStream) FrameMotion() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameMotion
}

func (s *clientStream) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
	s.recognizing = false
	return nil
}

// appendTranscript records a recognition result. Results are accepted even
// right after StopRecognition so trailing recognitions can land during the
// settle window; the controller resets the buffer when recording starts.
func (s *clientStream) appendTranscript(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	if s.transcript.Len() > 0 {
		s.transcript.WriteByte(' ')
	}
	s.transcript.WriteString(text)
}

func (s *clientStream) setSignals(audio, motion float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioLevel = audio
	s.frameMotion = motion
}

// grantedCapture hands out its stream once; the client granting camera and
// microphone access is what created the connection, so acquisition itself
// cannot fail here.
type grantedCapture struct {
	mu       sync.Mutex
	stream   *clientStream
	acquired bool
}

func newGrantedCapture(s *clientStream) *grantedCapture {
	return &grantedCapture{stream: s}
}

func (c *grantedCapture) Acquire(_ context.Context) (session.Stream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.acquired {
		return nil, fmt.Errorf("stream already acquired by this session")
	}
	c.acquired = true
	return c.stream, nil
}
