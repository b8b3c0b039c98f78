package ws

import (
	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/profile"
	"github.com/skillsynth/skillsynth/internal/session"
)

// Client message types.
const (
	msgStart      = "start"      // begin a session (kind: daily|audit)
	msgRecord     = "record"     // start recording the current answer
	msgStop       = "stop"       // stop recording and advance
	msgSignal     = "signal"     // live audio level and frame motion
	msgTranscript = "transcript" // a speech recognition result
	msgComplete   = "complete"   // blend the outcome into the profile
	msgAbort      = "abort"      // cancel the session
)

// Server message types.
const (
	msgQuestion   = "question"
	msgBiometrics = "biometrics"
	msgReport     = "report"
	msgProfile    = "profile"
	msgAborted    = "aborted"
	msgError      = "error"
)

type clientMessage struct {
	Type        string  `json:"type"`
	Kind        string  `json:"kind,omitempty"`
	StudentID   string  `json:"studentId,omitempty"`
	Text        string  `json:"text,omitempty"`
	AudioLevel  float64 `json:"audioLevel,omitempty"`
	FrameMotion float64 `json:"frameMotion,omitempty"`
}

type serverMessage struct {
	Type       string                   `json:"type"`
	Step       int                      `json:"step,omitempty"`
	Text       string                   `json:"text,omitempty"`
	Code       string                   `json:"code,omitempty"`
	Message    string                   `json:"message,omitempty"`
	Feedback   *content.Feedback        `json:"feedback,omitempty"`
	Biometrics *session.BiometricSample `json:"biometrics,omitempty"`
	Profile    *profile.Profile         `json:"profile,omitempty"`
}
