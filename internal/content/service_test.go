package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/skillsynth/skillsynth/internal/ai"
	"github.com/skillsynth/skillsynth/internal/curriculum"
)

func newTestService(t *testing.T, provider ai.Provider, opts ...Option) *Service {
	t.Helper()
	router := ai.NewRouter()
	router.Register("mock", provider)
	return NewService(router, opts...)
}

func testModule() curriculum.Module {
	return curriculum.Module{
		ID:             "m1",
		Week:           1,
		Title:          "Mastering Communication",
		Content:        "Original content.",
		LearningPoints: []string{"Listen actively"},
		Examples:       []string{"Example"},
		SkillsFocus:    []string{"communication"},
	}
}

const adaptedPayload = `{
	"content": "Adapted for grade 7.",
	"learningPoints": ["p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"],
	"examples": ["new example"]
}`

func TestAdaptModule(t *testing.T) {
	svc := newTestService(t, ai.NewMockProvider(adaptedPayload))

	got := svc.AdaptModule(context.Background(), testModule(), "Grade 7", "s1")
	if got.Content != "Adapted for grade 7." {
		t.Errorf("Content = %q", got.Content)
	}
	if len(got.LearningPoints) != 8 {
		t.Errorf("learning points = %d, want 8", len(got.LearningPoints))
	}
	if got.ID != "m1" || got.Title != "Mastering Communication" {
		t.Error("identity fields must survive adaptation")
	}
}

func TestAdaptModuleFallsBackOnProviderError(t *testing.T) {
	svc := newTestService(t, &ai.MockProvider{Err: errors.New("down")})

	m := testModule()
	got := svc.AdaptModule(context.Background(), m, "7", "s1")
	if got.Content != m.Content {
		t.Errorf("Content = %q, want original on failure", got.Content)
	}
}

func TestAdaptModuleFallsBackOnInvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "sorry, I cannot do that"},
		{"missing fields", `{"content": "x"}`},
		{"empty learning points", `{"content": "x", "learningPoints": [], "examples": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, ai.NewMockProvider(tt.payload))
			m := testModule()
			got := svc.AdaptModule(context.Background(), m, "7", "s1")
			if got.Content != m.Content {
				t.Errorf("Content = %q, want original on invalid payload", got.Content)
			}
		})
	}
}

func TestAdaptModuleStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + adaptedPayload + "\n```"
	svc := newTestService(t, ai.NewMockProvider(fenced))

	got := svc.AdaptModule(context.Background(), testModule(), "7", "s1")
	if got.Content != "Adapted for grade 7." {
		t.Errorf("Content = %q, fenced payload should be accepted", got.Content)
	}
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
	gets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func TestAdaptModuleUsesCache(t *testing.T) {
	mock := ai.NewMockProvider(adaptedPayload)
	cache := newFakeCache()
	svc := newTestService(t, mock, WithCache(cache))

	ctx := context.Background()
	svc.AdaptModule(ctx, testModule(), "7", "s1")
	svc.AdaptModule(ctx, testModule(), "7", "s1")

	if mock.Calls() != 1 {
		t.Errorf("provider calls = %d, want 1 (second request served from cache)", mock.Calls())
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}

	// A different grade is a different cache entry.
	svc.AdaptModule(ctx, testModule(), "9", "s1")
	if mock.Calls() != 2 {
		t.Errorf("provider calls = %d, want 2 for a new grade", mock.Calls())
	}
}

const evolvedPayload = `{
	"title": "Mastering Communication II: Advanced Tactics",
	"content": "Advanced content.",
	"learningPoints": ["a1", "a2"],
	"quizzes": [{"id": "q1", "question": "Q?", "options": ["a", "b", "c"], "correctAnswer": 1}]
}`

func TestEvolveModule(t *testing.T) {
	svc := newTestService(t, ai.NewMockProvider(evolvedPayload))

	got, err := svc.EvolveModule(context.Background(), testModule(), "8", "s1")
	if err != nil {
		t.Fatalf("EvolveModule() error = %v", err)
	}
	if got.ID != "m1_v2" {
		t.Errorf("ID = %q, want %q", got.ID, "m1_v2")
	}
	if got.Week != 1 {
		t.Errorf("Week = %d, evolved module inherits the original week", got.Week)
	}
	if len(got.Quizzes) != 1 || got.Quizzes[0].CorrectAnswer != 1 {
		t.Errorf("Quizzes = %+v", got.Quizzes)
	}
}

func TestEvolveModuleErrorsOnFailure(t *testing.T) {
	svc := newTestService(t, &ai.MockProvider{Err: errors.New("down")})
	if _, err := svc.EvolveModule(context.Background(), testModule(), "8", "s1"); err == nil {
		t.Error("expected error when provider fails")
	}

	svc = newTestService(t, ai.NewMockProvider(`{"title": "x"}`))
	if _, err := svc.EvolveModule(context.Background(), testModule(), "8", "s1"); err == nil {
		t.Error("expected error for incomplete payload")
	}
}

func TestNextQuestion(t *testing.T) {
	svc := newTestService(t, ai.NewMockProvider(`"How do you cheer up a friend?"`))

	got := svc.NextQuestion(context.Background(), nil, 0, 5, nil, "8", "s1")
	if got != "How do you cheer up a friend?" {
		t.Errorf("question = %q, surrounding quotes should be stripped", got)
	}
}

func TestNextQuestionFallbacks(t *testing.T) {
	svc := newTestService(t, &ai.MockProvider{Err: errors.New("down")})
	if got := svc.NextQuestion(context.Background(), nil, 0, 5, nil, "8", "s1"); got != fallbackErrorQuestion {
		t.Errorf("question = %q, want error fallback", got)
	}

	svc = newTestService(t, ai.NewMockProvider("  "))
	if got := svc.NextQuestion(context.Background(), nil, 0, 5, nil, "8", "s1"); got != fallbackEmptyQuestion {
		t.Errorf("question = %q, want empty-response fallback", got)
	}
}

func TestNextQuestionPromptIncludesRecentQuestions(t *testing.T) {
	mock := ai.NewMockProvider("Next question?")
	svc := newTestService(t, mock)

	past := make([]string, 30)
	for i := range past {
		past[i] = fmt.Sprintf("past question number %d?", i)
	}
	svc.NextQuestion(context.Background(), nil, 0, 5, past, "8", "s1")

	system := mock.LastRequest.System
	if strings.Contains(system, past[0]) {
		t.Error("system prompt should only carry the most recent questions")
	}
	if !strings.Contains(system, past[len(past)-1]) {
		t.Error("system prompt should carry the newest past question")
	}
}

const feedbackPayload = `{
	"feedback": "Nice work!",
	"scores": {"communication": 88, "confidence": 74, "teamwork": 81, "problemSolving": 69},
	"biometrics": {"eyeContact": 90, "voiceModulation": 80, "facialExpression": 85},
	"strengths": [{"title": "Clarity", "description": "Clear answers."}],
	"weaknesses": [{"title": "Pacing", "description": "A bit rushed."}],
	"improvementAreas": [{"title": "Examples", "description": "Add specifics."}],
	"aiVision": "Rising Star"
}`

func TestScoreTranscript(t *testing.T) {
	svc := newTestService(t, ai.NewMockProvider(feedbackPayload))

	fb := svc.ScoreTranscript(context.Background(), []Turn{{Question: "Q", Answer: "A"}}, "s1")
	if fb.Feedback != "Nice work!" {
		t.Errorf("Feedback = %q", fb.Feedback)
	}
	if fb.Scores["communication"] != 88 {
		t.Errorf("communication = %d, want 88", fb.Scores["communication"])
	}
	if fb.AIVision != "Rising Star" {
		t.Errorf("AIVision = %q", fb.AIVision)
	}
}

func TestScoreTranscriptFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		provider ai.Provider
	}{
		{"provider error", &ai.MockProvider{Err: errors.New("down")}},
		{"invalid payload", ai.NewMockProvider(`{"feedback": "only feedback"}`)},
		{"not json", ai.NewMockProvider("plain text")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.provider)
			fb := svc.ScoreTranscript(context.Background(), nil, "s1")
			want := fallbackFeedback()
			if fb.Feedback != want.Feedback || fb.AIVision != want.AIVision {
				t.Errorf("feedback = %+v, want fallback report", fb)
			}
			if fb.Scores["communication"] != 85 {
				t.Errorf("communication = %d, want fallback 85", fb.Scores["communication"])
			}
		})
	}
}

func TestBudgetGatesRequests(t *testing.T) {
	budget := ai.NewInMemoryBudget(1)
	budget.SetBudget("broke", 1)
	if err := budget.Record("broke", 5); err != nil {
		t.Fatal(err)
	}

	mock := ai.NewMockProvider(adaptedPayload)
	svc := newTestService(t, mock, WithBudget(budget))

	m := testModule()
	got := svc.AdaptModule(context.Background(), m, "7", "broke")
	if got.Content != m.Content {
		t.Error("over-budget student should get the original module")
	}
	if mock.Calls() != 0 {
		t.Errorf("provider calls = %d, want 0 when over budget", mock.Calls())
	}

	if q := svc.NextQuestion(context.Background(), nil, 0, 5, nil, "8", "broke"); q != fallbackErrorQuestion {
		t.Errorf("question = %q, want fallback when over budget", q)
	}
	fb := svc.ScoreTranscript(context.Background(), nil, "broke")
	if fb.AIVision != fallbackFeedback().AIVision {
		t.Error("scoring should fall back when over budget")
	}
}

func TestBudgetRecordsUsage(t *testing.T) {
	budget := ai.NewInMemoryBudget(0)
	svc := newTestService(t, ai.NewMockProvider(adaptedPayload), WithBudget(budget))

	svc.AdaptModule(context.Background(), testModule(), "7", "s1")
	used, _, err := budget.Usage("s1")
	if err != nil {
		t.Fatal(err)
	}
	if used == 0 {
		t.Error("token usage should be recorded after a completion")
	}
}
