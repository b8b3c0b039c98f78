// Package content generates and scores adaptive learning content through the
// AI gateway, with fixed fallbacks so a failed or missing backend never
// blocks a student.
package content

import "github.com/skillsynth/skillsynth/internal/profile"

// Turn is one question and answer pair from an assessment interview.
type Turn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TraitNote is a titled observation in a feedback report.
type TraitNote struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Biometrics are the model's impression of the student's delivery, reported
// alongside the locally sampled values.
type Biometrics struct {
	EyeContact       int `json:"eyeContact"`
	VoiceModulation  int `json:"voiceModulation"`
	FacialExpression int `json:"facialExpression"`
}

// Feedback is the structured result of scoring an interview transcript.
type Feedback struct {
	Feedback         string         `json:"feedback"`
	Scores           profile.Scores `json:"scores"`
	Biometrics       Biometrics     `json:"biometrics"`
	Strengths        []TraitNote    `json:"strengths"`
	Weaknesses       []TraitNote    `json:"weaknesses"`
	ImprovementAreas []TraitNote    `json:"improvementAreas"`
	AIVision         string         `json:"aiVision"`
}

// AdaptedContent is the payload returned by a content adaptation request.
type AdaptedContent struct {
	Content        string   `json:"content"`
	LearningPoints []string `json:"learningPoints"`
	Examples       []string `json:"examples"`
}

// EvolvedContent is the payload returned by a module evolution request.
type EvolvedContent struct {
	Title          string                `json:"title"`
	Content        string                `json:"content"`
	LearningPoints []string              `json:"learningPoints"`
	Quizzes        []evolvedQuizQuestion `json:"quizzes"`
}

type evolvedQuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
