package curriculum_test

import (
	"testing"
	"time"

	"github.com/skillsynth/skillsynth/internal/curriculum"
)

func TestCatalog_Defaults(t *testing.T) {
	cat := curriculum.NewCatalog(nil, nil)

	if cat.Len() != 8 {
		t.Errorf("Len() = %d, want 8", cat.Len())
	}

	m, found := cat.Get("m1")
	if !found {
		t.Fatal("Get(m1) not found")
	}
	if m.Title != "Communication Basics" {
		t.Errorf("Title = %q, want Communication Basics", m.Title)
	}
	if len(m.LearningPoints) != 8 {
		t.Errorf("LearningPoints = %d, want 8", len(m.LearningPoints))
	}
}

func TestCatalog_Get_NotFound(t *testing.T) {
	cat := curriculum.NewCatalog(nil, nil)

	_, found := cat.Get("nonexistent")
	if found {
		t.Error("Get(nonexistent) should not be found")
	}
}

func TestCatalog_ReplaceEvolved(t *testing.T) {
	cat := curriculum.NewCatalog(nil, nil)

	evolved := cat.ReplaceEvolved("m1", curriculum.Module{
		Title:   "Communication Basics II: Advanced Tactics",
		Content: "Advanced material.",
	})

	if evolved.ID != "m1_v2" {
		t.Errorf("evolved ID = %q, want m1_v2", evolved.ID)
	}
	if evolved.Week != 1 {
		t.Errorf("evolved Week = %d, want 1 (inherited)", evolved.Week)
	}
	if len(evolved.SkillsFocus) == 0 {
		t.Error("evolved SkillsFocus should inherit from original")
	}

	// Original is replaced in place, not duplicated.
	if cat.Len() != 8 {
		t.Errorf("Len() after evolve = %d, want 8", cat.Len())
	}
	if _, found := cat.Get("m1"); found {
		t.Error("original m1 should no longer be in the catalog")
	}
	if _, found := cat.Get("m1_v2"); !found {
		t.Error("m1_v2 should be in the catalog")
	}
}

func TestCatalog_ReplaceEvolved_MissingOriginal(t *testing.T) {
	cat := curriculum.NewCatalog([]curriculum.Module{}, nil)

	cat.ReplaceEvolved("m9", curriculum.Module{Title: "New"})
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (appended)", cat.Len())
	}
}

func TestCatalog_ProgressPercent(t *testing.T) {
	cat := curriculum.NewCatalog(nil, nil)

	tests := []struct {
		name      string
		completed []string
		want      int
	}{
		{"none", nil, 0},
		{"half", []string{"m1", "m2", "m3", "m4"}, 50},
		{"all", []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8"}, 100},
		{"duplicates ignored", []string{"m1", "m1", "m1"}, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.ProgressPercent(tt.completed); got != tt.want {
				t.Errorf("ProgressPercent(%v) = %d, want %d", tt.completed, got, tt.want)
			}
		})
	}
}

func TestCatalog_DailyTaskFor_Rotates(t *testing.T) {
	cat := curriculum.NewCatalog(nil, nil)

	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t1 := cat.DailyTaskFor(day1)
	t2 := cat.DailyTaskFor(day2)
	if t1.ID == "" || t2.ID == "" {
		t.Fatal("DailyTaskFor() returned empty task")
	}
	if t1.ID == t2.ID {
		t.Error("consecutive days should rotate to different tasks")
	}
	if again := cat.DailyTaskFor(day1); again.ID != t1.ID {
		t.Error("same day should yield the same task")
	}
}

func TestGradeQuiz(t *testing.T) {
	m := curriculum.Module{
		Quizzes: []curriculum.QuizQuestion{
			{ID: "q1", CorrectAnswer: 1},
			{ID: "q2", CorrectAnswer: 2},
		},
	}

	correct, mastery := curriculum.GradeQuiz(m, map[string]int{"q1": 1, "q2": 2})
	if correct != 2 || !mastery {
		t.Errorf("all correct: got (%d, %v), want (2, true)", correct, mastery)
	}

	correct, mastery = curriculum.GradeQuiz(m, map[string]int{"q1": 1, "q2": 0})
	if correct != 1 || mastery {
		t.Errorf("one wrong: got (%d, %v), want (1, false)", correct, mastery)
	}

	correct, mastery = curriculum.GradeQuiz(m, nil)
	if correct != 0 || mastery {
		t.Errorf("no answers: got (%d, %v), want (0, false)", correct, mastery)
	}
}

func TestGradeQuiz_NoQuestions(t *testing.T) {
	_, mastery := curriculum.GradeQuiz(curriculum.Module{}, nil)
	if !mastery {
		t.Error("module without quizzes counts as mastered")
	}
}
