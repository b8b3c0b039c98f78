package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/skillsynth/skillsynth/internal/curriculum"
)

// recentQuestionWindow bounds how many past questions are fed back to the
// model to steer it away from repeats.
const recentQuestionWindow = 20

func gradeNumber(grade string) int {
	digits := strings.TrimFunc(grade, func(r rune) bool {
		return r < '0' || r > '9'
	})
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 8
	}
	return n
}

func adaptSystemPrompt(grade string) string {
	return fmt.Sprintf(`You are an AI Education Specialist. Your task is to adapt a soft-skills lesson for a student in Grade %d.
Return a JSON object with updated 'content', 'learningPoints', and 'examples'.
Ensure 'learningPoints' has exactly 8 items.`, gradeNumber(grade))
}

func adaptUserPrompt(m curriculum.Module, grade string) string {
	payload, _ := json.Marshal(m)
	return fmt.Sprintf("Adapt this module for a Grade %d student:\n%s", gradeNumber(grade), payload)
}

func evolveSystemPrompt(m curriculum.Module, grade string) string {
	return fmt.Sprintf(`You are an AI Mastery Architect. The student has mastered the basic version of %q.
Generate "Level 2: Advanced Concepts" for this module.
Focus on complex scenarios, nuance, and professional-level soft skills appropriate for Grade %s.
Return a JSON object with a NEW 'title' (e.g., "%s II: Advanced Tactics"), 'content', 'learningPoints', and 'quizzes'.`,
		m.Title, grade, m.Title)
}

func evolveUserPrompt(m curriculum.Module) string {
	payload, _ := json.Marshal(m)
	return fmt.Sprintf("Evolve this module to an advanced level:\n%s", payload)
}

func questionSystemPrompt(pastQuestions []string) string {
	if len(pastQuestions) > recentQuestionWindow {
		pastQuestions = pastQuestions[len(pastQuestions)-recentQuestionWindow:]
	}
	return fmt.Sprintf(`You are a friendly AI Mentor for school kids (Grades 6-12).
Your goal is to ask EASY, simple, and very short soft-skill questions.

CRITICAL RULES:
1. Ask ONLY ONE simple question.
2. Make the scenario very relatable to school life (friends, lunch, sports, projects).
3. Use very easy words. No complex jargon.
4. Be super encouraging and kind.
5. Avoid repeating themes or previous questions: %s

Return ONLY the question string.`, strings.Join(pastQuestions, " | "))
}

func questionUserPrompt(history []Turn, step, totalSteps int, grade string) string {
	if len(history) == 0 {
		return fmt.Sprintf("Ask an EASY, friendly first question for a Grade %s student. Focus on communication.", grade)
	}
	return fmt.Sprintf("The student said:\n%s\n\nAsk the NEXT easy question (Step %d of %d) about a different skill like confidence or teamwork.",
		transcript(history), step+1, totalSteps)
}

const scoringSystemPrompt = `Analyze the student's conversation. Be an encouraging AI Coach.
Scores must be 1-100. Give high scores (70-90) to keep them motivated!
Return a structured JSON object.`

func scoringUserPrompt(history []Turn) string {
	return fmt.Sprintf("Provide warm feedback for this student transcript:\n\n%s", transcript(history))
}

func transcript(history []Turn) string {
	parts := make([]string, len(history))
	for i, t := range history {
		parts[i] = fmt.Sprintf("Q: %s\nA: %s", t.Question, t.Answer)
	}
	return strings.Join(parts, "\n\n")
}
