package curriculum_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skillsynth/skillsynth/internal/curriculum"
)

func TestLoader_LoadModules(t *testing.T) {
	dir := setupTestCurriculum(t)

	loader, err := curriculum.NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	modules := loader.Modules()
	if len(modules) != 2 {
		t.Fatalf("Modules() = %d modules, want 2", len(modules))
	}
	// Ordered by week.
	if modules[0].ID != "w1" {
		t.Errorf("first module = %q, want w1", modules[0].ID)
	}
}

func TestLoader_LoadDailyTasks(t *testing.T) {
	dir := setupTestCurriculum(t)

	loader, err := curriculum.NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	tasks := loader.DailyTasks()
	if len(tasks) != 1 {
		t.Fatalf("DailyTasks() = %d tasks, want 1", len(tasks))
	}
	if tasks[0].Skill != "confidence" {
		t.Errorf("task skill = %q, want confidence", tasks[0].Skill)
	}
}

func TestLoader_SkipsInvalidYAML(t *testing.T) {
	dir := setupTestCurriculum(t)
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := curriculum.NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() should tolerate invalid files, got error = %v", err)
	}
	if len(loader.Modules()) != 2 {
		t.Errorf("Modules() = %d, want 2 (broken file skipped)", len(loader.Modules()))
	}
}

func setupTestCurriculum(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	module1 := `
id: w1
week: 1
title: Listening First
description: Listening before speaking.
content: Listen twice as much as you talk.
learning_points:
  - Let others finish their sentences.
skills_focus:
  - communication
`
	module2 := `
id: w2
week: 2
title: Speaking Up
description: Sharing ideas with confidence.
content: Your voice matters.
quizzes:
  - id: q1
    question: When should you raise your hand?
    options: ["Never", "When you have a question"]
    correct_answer: 1
skills_focus:
  - confidence
`
	tasks := `
- id: d1
  title: The Pitch
  description: Introduce yourself in thirty seconds.
  skill: confidence
`

	files := map[string]string{
		"w1.yaml":        module1,
		"w2.yaml":        module2,
		"day.tasks.yaml": tasks,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
