package ws

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/profile"
	"github.com/skillsynth/skillsynth/internal/session"
)

type fakeContent struct {
	feedback content.Feedback
}

func (f *fakeContent) NextQuestion(_ context.Context, _ []content.Turn, step, _ int, _ []string, _, _ string) string {
	return fmt.Sprintf("Question for step %d?", step+1)
}

func (f *fakeContent) ScoreTranscript(_ context.Context, _ []content.Turn, _ string) content.Feedback {
	return f.feedback
}

func testConfig() session.Config {
	return session.Config{SettleDelay: time.Millisecond, SampleInterval: time.Millisecond}
}

func dialTestServer(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func readUntil(t *testing.T, conn *websocket.Conn, msgType string) serverMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		var msg serverMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			t.Fatalf("read waiting for %q: %v", msgType, err)
		}
		if msg.Type == msgError {
			t.Fatalf("error message while waiting for %q: %s %s", msgType, msg.Code, msg.Message)
		}
		if msg.Type == msgType {
			return msg
		}
	}
}

func writeMsg(t *testing.T, conn *websocket.Conn, msg clientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		t.Fatalf("write %q: %v", msg.Type, err)
	}
}

func TestDailySessionOverWebSocket(t *testing.T) {
	store := profile.NewMemoryStore()
	p := &profile.Profile{
		Name:         "Asha",
		ClassSection: "Grade 8",
		Scores:       profile.Scores{"communication": 60},
		Streak:       2,
	}
	id, err := store.Create(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	svc := &fakeContent{feedback: content.Feedback{
		Feedback: "Nice!",
		Scores:   profile.Scores{"communication": 80, "confidence": 70, "teamwork": 75, "problemSolving": 65},
		AIVision: "Rising Star",
	}}
	conn := dialTestServer(t, NewHandler(svc, store, testConfig()))

	writeMsg(t, conn, clientMessage{Type: msgStart, Kind: "daily", StudentID: id})
	q := readUntil(t, conn, msgQuestion)
	if q.Text == "" {
		t.Fatal("empty question")
	}

	writeMsg(t, conn, clientMessage{Type: msgRecord})
	writeMsg(t, conn, clientMessage{Type: msgSignal, AudioLevel: 5, FrameMotion: 20})
	writeMsg(t, conn, clientMessage{Type: msgTranscript, Text: "I would ask my friends for their ideas first"})
	writeMsg(t, conn, clientMessage{Type: msgStop})

	report := readUntil(t, conn, msgReport)
	if report.Feedback == nil || report.Feedback.AIVision != "Rising Star" {
		t.Fatalf("report = %+v", report.Feedback)
	}

	writeMsg(t, conn, clientMessage{Type: msgComplete})
	prof := readUntil(t, conn, msgProfile)
	if prof.Profile == nil {
		t.Fatal("profile message missing payload")
	}
	if got := prof.Profile.Scores["communication"]; got != 70 {
		t.Errorf("blended communication = %d, want 70", got)
	}
	if prof.Profile.Streak != 3 {
		t.Errorf("streak = %d, want 3 after a daily task", prof.Profile.Streak)
	}

	stored, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Scores["communication"] != 70 {
		t.Errorf("stored communication = %d, want 70", stored.Scores["communication"])
	}
	if len(stored.ScoreHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(stored.ScoreHistory))
	}
}

func TestEmptyTranscriptErrorOverWebSocket(t *testing.T) {
	store := profile.NewMemoryStore()
	id, err := store.Create(context.Background(), &profile.Profile{Name: "Ravi"})
	if err != nil {
		t.Fatal(err)
	}

	svc := &fakeContent{feedback: content.Feedback{Scores: profile.Scores{}}}
	conn := dialTestServer(t, NewHandler(svc, store, testConfig()))

	writeMsg(t, conn, clientMessage{Type: msgStart, Kind: "audit", StudentID: id})
	readUntil(t, conn, msgQuestion)

	writeMsg(t, conn, clientMessage{Type: msgRecord})
	writeMsg(t, conn, clientMessage{Type: msgStop})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		var msg serverMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type == msgError {
			if msg.Code != "empty_transcript" {
				t.Errorf("code = %q, want empty_transcript", msg.Code)
			}
			return
		}
	}
}

func TestUnknownStudentRejected(t *testing.T) {
	svc := &fakeContent{}
	conn := dialTestServer(t, NewHandler(svc, profile.NewMemoryStore(), testConfig()))

	writeMsg(t, conn, clientMessage{Type: msgStart, Kind: "daily", StudentID: "nope"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var msg serverMessage
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != msgError || msg.Code != "unknown_student" {
		t.Errorf("message = %+v, want unknown_student error", msg)
	}
}

func TestRecordBeforeStartRejected(t *testing.T) {
	conn := dialTestServer(t, NewHandler(&fakeContent{}, profile.NewMemoryStore(), testConfig()))

	writeMsg(t, conn, clientMessage{Type: msgRecord})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var msg serverMessage
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != msgError || msg.Code != "no_session" {
		t.Errorf("message = %+v, want no_session error", msg)
	}
}

func TestAbortOverWebSocket(t *testing.T) {
	store := profile.NewMemoryStore()
	id, err := store.Create(context.Background(), &profile.Profile{Name: "Mei"})
	if err != nil {
		t.Fatal(err)
	}

	conn := dialTestServer(t, NewHandler(&fakeContent{}, store, testConfig()))
	writeMsg(t, conn, clientMessage{Type: msgStart, Kind: "audit", StudentID: id})
	readUntil(t, conn, msgQuestion)

	writeMsg(t, conn, clientMessage{Type: msgAbort})
	readUntil(t, conn, msgAborted)

	stored, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.ScoreHistory) != 0 {
		t.Error("aborted session must not touch the profile")
	}
}
