package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skillsynth/skillsynth/internal/ai"
	"github.com/skillsynth/skillsynth/internal/curriculum"
)

// adaptCacheTTL bounds how long an adapted lesson is reused before it is
// regenerated.
const adaptCacheTTL = 24 * time.Hour

// Cache stores adapted lesson payloads keyed by module and grade. A nil
// cache disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Service generates lessons, interview questions and score reports through
// the AI router. Every method degrades to a usable fallback when the backend
// is unavailable or over budget.
type Service struct {
	router *ai.Router
	budget ai.BudgetChecker
	cache  Cache
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables adaptation caching.
func WithCache(c Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithBudget enables per-student token budgeting.
func WithBudget(b ai.BudgetChecker) Option {
	return func(s *Service) {
		s.budget = b
	}
}

// NewService creates a content service on top of the AI router.
func NewService(router *ai.Router, opts ...Option) *Service {
	s := &Service{router: router}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AdaptModule rewrites a module's lesson content for the student's grade
// level. On any failure the original module is returned unchanged.
func (s *Service) AdaptModule(ctx context.Context, m curriculum.Module, grade, studentID string) curriculum.Module {
	if !s.hasBudget(studentID) {
		slog.Info("skipping content adaptation, student over token budget", "student_id", studentID)
		return m
	}

	cacheKey := fmt.Sprintf("adapt:%s:%d", m.ID, gradeNumber(grade))
	if s.cache != nil {
		var cached AdaptedContent
		if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return mergeAdapted(m, cached)
		}
	}

	resp, err := s.router.Complete(ctx, ai.CompletionRequest{
		Task:     ai.TaskAdapt,
		System:   adaptSystemPrompt(grade),
		Messages: []ai.Message{{Role: "user", Content: adaptUserPrompt(m, grade)}},
		JSON:     true,
	})
	if err != nil {
		slog.Warn("content adaptation failed, keeping original module", "module_id", m.ID, "error", err)
		return m
	}
	s.recordUsage(studentID, resp.TotalTokens())

	cleaned, err := validateJSON(adaptedValidator, resp.Content)
	if err != nil {
		slog.Warn("content adaptation returned invalid payload", "module_id", m.ID, "error", err)
		return m
	}
	var adapted AdaptedContent
	if err := json.Unmarshal([]byte(cleaned), &adapted); err != nil {
		slog.Warn("content adaptation payload did not decode", "module_id", m.ID, "error", err)
		return m
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, adapted, adaptCacheTTL); err != nil {
			slog.Debug("adaptation cache write failed", "key", cacheKey, "error", err)
		}
	}
	return mergeAdapted(m, adapted)
}

// EvolveModule generates the advanced follow-up lesson for a mastered
// module. Unlike adaptation there is no silent fallback; the caller keeps
// the original module when an error is returned.
func (s *Service) EvolveModule(ctx context.Context, m curriculum.Module, grade, studentID string) (curriculum.Module, error) {
	if !s.hasBudget(studentID) {
		return curriculum.Module{}, fmt.Errorf("student %s is over token budget", studentID)
	}

	resp, err := s.router.Complete(ctx, ai.CompletionRequest{
		Task:     ai.TaskEvolve,
		System:   evolveSystemPrompt(m, grade),
		Messages: []ai.Message{{Role: "user", Content: evolveUserPrompt(m)}},
		JSON:     true,
	})
	if err != nil {
		return curriculum.Module{}, fmt.Errorf("evolve module %s: %w", m.ID, err)
	}
	s.recordUsage(studentID, resp.TotalTokens())

	cleaned, err := validateJSON(evolvedValidator, resp.Content)
	if err != nil {
		return curriculum.Module{}, fmt.Errorf("evolve module %s: %w", m.ID, err)
	}
	var evolved EvolvedContent
	if err := json.Unmarshal([]byte(cleaned), &evolved); err != nil {
		return curriculum.Module{}, fmt.Errorf("evolve module %s: decode payload: %w", m.ID, err)
	}

	out := curriculum.Module{
		ID:             curriculum.EvolvedID(m.ID),
		Title:          evolved.Title,
		Week:           m.Week,
		SkillsFocus:    append([]string(nil), m.SkillsFocus...),
		Content:        evolved.Content,
		LearningPoints: evolved.LearningPoints,
	}
	for _, q := range evolved.Quizzes {
		out.Quizzes = append(out.Quizzes, curriculum.QuizQuestion{
			ID:            q.ID,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return out, nil
}

// NextQuestion produces the next interview question given the conversation
// so far. It never fails: backend errors yield a fixed friendly question.
func (s *Service) NextQuestion(ctx context.Context, history []Turn, step, totalSteps int, pastQuestions []string, grade, studentID string) string {
	if !s.hasBudget(studentID) {
		return fallbackErrorQuestion
	}

	resp, err := s.router.Complete(ctx, ai.CompletionRequest{
		Task:        ai.TaskQuestion,
		System:      questionSystemPrompt(pastQuestions),
		Messages:    []ai.Message{{Role: "user", Content: questionUserPrompt(history, step, totalSteps, grade)}},
		Temperature: 0.8,
	})
	if err != nil {
		slog.Warn("question generation failed, using fallback", "error", err)
		return fallbackErrorQuestion
	}
	s.recordUsage(studentID, resp.TotalTokens())

	question := strings.Trim(strings.TrimSpace(resp.Content), `"`)
	if question == "" {
		return fallbackEmptyQuestion
	}
	return question
}

// ScoreTranscript evaluates a finished interview. It never fails: backend or
// validation errors yield a fixed encouraging report.
func (s *Service) ScoreTranscript(ctx context.Context, history []Turn, studentID string) Feedback {
	if !s.hasBudget(studentID) {
		return fallbackFeedback()
	}

	resp, err := s.router.Complete(ctx, ai.CompletionRequest{
		Task:     ai.TaskScoring,
		System:   scoringSystemPrompt,
		Messages: []ai.Message{{Role: "user", Content: scoringUserPrompt(history)}},
		JSON:     true,
	})
	if err != nil {
		slog.Warn("transcript scoring failed, using fallback report", "error", err)
		return fallbackFeedback()
	}
	s.recordUsage(studentID, resp.TotalTokens())

	cleaned, err := validateJSON(feedbackValidator, resp.Content)
	if err != nil {
		slog.Warn("scoring response failed validation, using fallback report", "error", err)
		return fallbackFeedback()
	}
	var fb Feedback
	if err := json.Unmarshal([]byte(cleaned), &fb); err != nil {
		slog.Warn("scoring response did not decode, using fallback report", "error", err)
		return fallbackFeedback()
	}
	fb.Scores = fb.Scores.Clamped()
	return fb
}

func (s *Service) hasBudget(studentID string) bool {
	if s.budget == nil || studentID == "" {
		return true
	}
	ok, err := s.budget.Check(studentID)
	if err != nil {
		slog.Warn("budget check failed, allowing request", "student_id", studentID, "error", err)
		return true
	}
	return ok
}

func (s *Service) recordUsage(studentID string, tokens int) {
	if s.budget == nil || studentID == "" {
		return
	}
	if err := s.budget.Record(studentID, tokens); err != nil {
		slog.Warn("recording token usage failed", "student_id", studentID, "error", err)
	}
}

func mergeAdapted(m curriculum.Module, adapted AdaptedContent) curriculum.Module {
	out := m
	out.Content = adapted.Content
	out.LearningPoints = adapted.LearningPoints
	out.Examples = adapted.Examples
	return out
}
