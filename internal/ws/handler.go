package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/skillsynth/skillsynth/internal/profile"
	"github.com/skillsynth/skillsynth/internal/session"
)

const (
	writeTimeout = 5 * time.Second
	// biometricInterval paces the live meter pushes to the client.
	biometricInterval = 250 * time.Millisecond
)

// Handler upgrades HTTP requests to assessment session connections. One
// connection carries at most one session.
type Handler struct {
	svc      session.ContentService
	profiles profile.Store
	cfg      session.Config
}

// NewHandler creates the session WebSocket handler.
func NewHandler(svc session.ContentService, profiles profile.Store, cfg session.Config) *Handler {
	return &Handler{svc: svc, profiles: profiles, cfg: cfg}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	sc := &sessionConn{h: h, conn: conn}
	sc.run(r.Context())
	conn.Close(websocket.StatusNormalClosure, "session closed")
}

// sessionConn is the per-connection state: the signal mirror stream, the
// controller, and the student whose profile the outcome blends into.
type sessionConn struct {
	h    *Handler
	conn *websocket.Conn

	writeMu sync.Mutex

	stream    *clientStream
	ctrl      *session.Controller
	studentID string
}

func (sc *sessionConn) run(ctx context.Context) {
	for {
		var msg clientMessage
		if err := wsjson.Read(ctx, sc.conn, &msg); err != nil {
			// Client went away; make sure the session lets go of everything.
			if sc.ctrl != nil {
				sc.ctrl.Abort()
			}
			return
		}

		switch msg.Type {
		case msgStart:
			sc.handleStart(ctx, msg)
		case msgSignal:
			if sc.stream != nil {
				sc.stream.setSignals(msg.AudioLevel, msg.FrameMotion)
			}
		case msgTranscript:
			if sc.stream != nil {
				sc.stream.appendTranscript(msg.Text)
			}
		case msgRecord:
			if sc.ctrl == nil {
				sc.sendError(ctx, "no_session", "no session in progress")
				continue
			}
			if err := sc.ctrl.StartRecording(); err != nil {
				sc.sendOpError(ctx, err)
			}
		case msgStop:
			if sc.ctrl == nil {
				sc.sendError(ctx, "no_session", "no session in progress")
				continue
			}
			// Runs in its own goroutine: the settle delay must not block the
			// read loop, trailing transcripts still arrive during it.
			go func(ctrl *session.Controller) {
				if err := ctrl.StopRecordingAndAdvance(); err != nil {
					sc.sendOpError(ctx, err)
				}
			}(sc.ctrl)
		case msgComplete:
			sc.handleComplete(ctx)
		case msgAbort:
			if sc.ctrl != nil {
				sc.ctrl.Abort()
			}
		default:
			sc.sendError(ctx, "bad_message", "unknown message type: "+msg.Type)
		}
	}
}

func (sc *sessionConn) handleStart(ctx context.Context, msg clientMessage) {
	if sc.ctrl != nil {
		sc.sendError(ctx, "session_exists", "a session is already in progress on this connection")
		return
	}

	kind := session.KindAudit
	if msg.Kind == "daily" {
		kind = session.KindDaily
	}

	student := session.Student{ID: msg.StudentID}
	if msg.StudentID != "" {
		p, err := sc.h.profiles.Get(ctx, msg.StudentID)
		if err != nil {
			sc.sendError(ctx, "unknown_student", "student profile not found")
			return
		}
		student.Grade = p.ClassSection
		student.PastQuestions = p.AskedQuestions
	}

	sc.stream = &clientStream{}
	sc.studentID = msg.StudentID
	sc.ctrl = session.NewController(kind, student, newGrantedCapture(sc.stream), sc.h.svc, sc.h.cfg)

	if err := sc.ctrl.Start(ctx); err != nil {
		sc.sendOpError(ctx, err)
		sc.ctrl = nil
		sc.stream = nil
		return
	}
	go sc.forwardEvents(ctx, sc.ctrl)
}

// forwardEvents pushes controller events and, while recording, the live
// biometric samples.
func (sc *sessionConn) forwardEvents(ctx context.Context, ctrl *session.Controller) {
	ticker := time.NewTicker(biometricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-ctrl.Events():
			switch e.Type {
			case session.EventQuestion:
				sc.send(ctx, serverMessage{Type: msgQuestion, Step: e.Step, Text: e.Question})
			case session.EventReport:
				fb := e.Feedback
				sc.send(ctx, serverMessage{Type: msgReport, Feedback: &fb})
			case session.EventAborted:
				sc.send(ctx, serverMessage{Type: msgAborted})
				return
			}
		case <-ticker.C:
			if ctrl.Recording() {
				sample := ctrl.Biometrics()
				sc.send(ctx, serverMessage{Type: msgBiometrics, Biometrics: &sample})
			}
		}
	}
}

func (sc *sessionConn) handleComplete(ctx context.Context) {
	if sc.ctrl == nil {
		sc.sendError(ctx, "no_session", "no session in progress")
		return
	}
	outcome, err := sc.ctrl.Complete()
	if err != nil {
		sc.sendOpError(ctx, err)
		return
	}
	if sc.studentID == "" {
		// Anonymous session: nothing to persist, hand the report back only.
		sc.send(ctx, serverMessage{Type: msgProfile})
		return
	}

	p, err := sc.h.profiles.Get(ctx, sc.studentID)
	if err != nil {
		sc.sendError(ctx, "store", "loading profile failed")
		return
	}
	p.ApplySession(outcome, time.Now())
	if err := sc.h.profiles.Save(ctx, p); err != nil {
		sc.sendError(ctx, "store", "saving profile failed")
		return
	}
	sc.send(ctx, serverMessage{Type: msgProfile, Profile: p})
}

func (sc *sessionConn) send(ctx context.Context, msg serverMessage) {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(wctx, sc.conn, msg); err != nil {
		slog.Debug("websocket write failed", "type", msg.Type, "error", err)
	}
}

func (sc *sessionConn) sendError(ctx context.Context, code, message string) {
	sc.send(ctx, serverMessage{Type: msgError, Code: code, Message: message})
}

// sendOpError maps controller errors onto protocol error codes.
func (sc *sessionConn) sendOpError(ctx context.Context, err error) {
	code := "session"
	switch {
	case errors.Is(err, session.ErrEmptyTranscript):
		code = "empty_transcript"
	case errors.Is(err, session.ErrSynthesizing):
		code = "synthesizing"
	case errors.Is(err, session.ErrAlreadyRecording):
		code = "already_recording"
	case errors.Is(err, session.ErrNotRecording):
		code = "not_recording"
	case errors.Is(err, session.ErrInvalidState):
		code = "invalid_state"
	case errors.Is(err, session.ErrAborted):
		code = "aborted"
	}
	sc.sendError(ctx, code, err.Error())
}
