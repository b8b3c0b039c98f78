package report

import (
	"testing"

	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/profile"
)

func sampleFeedback() content.Feedback {
	return content.Feedback{
		Feedback: "Strong session overall.",
		Scores: profile.Scores{
			"communication":  82,
			"confidence":     76,
			"teamwork":       88,
			"problemSolving": 71,
		},
		Biometrics: content.Biometrics{EyeContact: 90, VoiceModulation: 80, FacialExpression: 86},
		Strengths:  []content.TraitNote{{Title: "Clarity", Description: "Clear, direct answers."}},
		Weaknesses: []content.TraitNote{{Title: "Pacing", Description: "Occasionally rushed."}},
		ImprovementAreas: []content.TraitNote{
			{Title: "Examples", Description: "Back claims with specifics."},
		},
		AIVision: "Future Leader",
	}
}

func TestSessionWorkbook(t *testing.T) {
	turns := []content.Turn{
		{Question: "Tell me about a team project.", Answer: "We built a robot together."},
	}
	data, err := SessionWorkbook("Asha", sampleFeedback(), turns)
	if err != nil {
		t.Fatalf("SessionWorkbook() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook is empty")
	}

	f, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("OpenWorkbook() error = %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Assessment Report", "B2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if name != "Asha" {
		t.Errorf("student cell = %q, want %q", name, "Asha")
	}

	rows, err := f.GetRows("Assessment Report")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	var foundScore, foundTranscript bool
	for _, r := range rows {
		if len(r) >= 2 && r[0] == "communication" && r[1] == "82" {
			foundScore = true
		}
		if len(r) >= 2 && r[1] == "Tell me about a team project." {
			foundTranscript = true
		}
	}
	if !foundScore {
		t.Error("communication score row not rendered")
	}
	if !foundTranscript {
		t.Error("transcript question row not rendered")
	}
}

func TestRosterWorkbook(t *testing.T) {
	entries := []profile.RosterEntry{
		{
			Name: "Asha", Grade: "Grade 9A", Progress: 63, Streak: 4,
			Status: profile.StatusActive,
			Scores: profile.Scores{"communication": 70, "confidence": 65, "teamwork": 80, "problemSolving": 60},
		},
		{
			Name: "Ravi", Grade: "Grade 9B", Progress: 100, Streak: 9,
			Status: profile.StatusCompleted,
			Scores: profile.Scores{"communication": 90},
		},
	}

	data, err := RosterWorkbook(entries)
	if err != nil {
		t.Fatalf("RosterWorkbook() error = %v", err)
	}

	f, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("OpenWorkbook() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Class Roster")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 students", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][4] != "Status" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Asha" || rows[1][2] != "63" {
		t.Errorf("first student row = %v", rows[1])
	}
	if rows[2][4] != "Completed" {
		t.Errorf("second student status = %q, want Completed", rows[2][4])
	}
}

func TestRosterWorkbookEmpty(t *testing.T) {
	data, err := RosterWorkbook(nil)
	if err != nil {
		t.Fatalf("RosterWorkbook(nil) error = %v", err)
	}
	f, err := OpenWorkbook(data)
	if err != nil {
		t.Fatalf("OpenWorkbook() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Class Roster")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
