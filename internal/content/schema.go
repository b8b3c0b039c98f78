package content

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the structured responses the model must return. Responses
// are validated before decoding so a malformed payload falls back instead of
// half-populating a lesson or report.

const adaptedSchema = `{
	"type": "object",
	"properties": {
		"content": {"type": "string", "minLength": 1},
		"learningPoints": {"type": "array", "items": {"type": "string"}, "minItems": 1},
		"examples": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["content", "learningPoints", "examples"]
}`

const evolvedSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"content": {"type": "string", "minLength": 1},
		"learningPoints": {"type": "array", "items": {"type": "string"}, "minItems": 1},
		"quizzes": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string"},
					"question": {"type": "string"},
					"options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
					"correctAnswer": {"type": "integer", "minimum": 0}
				},
				"required": ["id", "question", "options", "correctAnswer"]
			}
		}
	},
	"required": ["title", "content", "learningPoints", "quizzes"]
}`

const feedbackSchema = `{
	"type": "object",
	"properties": {
		"feedback": {"type": "string"},
		"scores": {
			"type": "object",
			"properties": {
				"communication": {"type": "number"},
				"confidence": {"type": "number"},
				"teamwork": {"type": "number"},
				"problemSolving": {"type": "number"}
			},
			"required": ["communication", "confidence", "teamwork", "problemSolving"]
		},
		"biometrics": {
			"type": "object",
			"properties": {
				"eyeContact": {"type": "number"},
				"voiceModulation": {"type": "number"},
				"facialExpression": {"type": "number"}
			},
			"required": ["eyeContact", "voiceModulation", "facialExpression"]
		},
		"strengths": {"type": "array", "items": {"$ref": "#/definitions/note"}},
		"weaknesses": {"type": "array", "items": {"$ref": "#/definitions/note"}},
		"improvementAreas": {"type": "array", "items": {"$ref": "#/definitions/note"}},
		"aiVision": {"type": "string"}
	},
	"required": ["feedback", "scores", "biometrics", "strengths", "weaknesses", "improvementAreas", "aiVision"],
	"definitions": {
		"note": {
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"description": {"type": "string"}
			},
			"required": ["title", "description"]
		}
	}
}`

var (
	adaptedValidator  = gojsonschema.NewStringLoader(adaptedSchema)
	evolvedValidator  = gojsonschema.NewStringLoader(evolvedSchema)
	feedbackValidator = gojsonschema.NewStringLoader(feedbackSchema)
)

// validateJSON checks a raw model response against a schema. The raw text is
// stripped of markdown code fences first since models wrap JSON in them.
func validateJSON(schema gojsonschema.JSONLoader, raw string) (string, error) {
	cleaned := stripCodeFence(raw)

	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return "", fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return "", fmt.Errorf("response failed schema validation: %s", strings.Join(msgs, "; "))
	}
	return cleaned, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
