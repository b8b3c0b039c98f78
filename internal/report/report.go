// Package report renders assessment results and teacher rosters into
// downloadable spreadsheets. Rendering is a pure function of its inputs.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/profile"
)

const (
	sessionSheet = "Assessment Report"
	rosterSheet  = "Class Roster"
)

// SessionWorkbook renders one completed session's feedback into a workbook.
func SessionWorkbook(studentName string, fb content.Feedback, turns []content.Turn) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sessionSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	set := func(col string, v any) {
		cell := fmt.Sprintf("%s%d", col, row)
		f.SetCellValue(sessionSheet, cell, v)
	}

	set("A", "SkillSynth Assessment Report")
	row++
	set("A", "Student")
	set("B", studentName)
	row += 2

	set("A", "Skill Scores")
	row++
	for _, dim := range profile.Dimensions {
		set("A", dim)
		set("B", fb.Scores[dim])
		row++
	}
	row++

	set("A", "Delivery Signals")
	row++
	set("A", "Eye contact")
	set("B", fb.Biometrics.EyeContact)
	row++
	set("A", "Voice modulation")
	set("B", fb.Biometrics.VoiceModulation)
	row++
	set("A", "Facial expression")
	set("B", fb.Biometrics.FacialExpression)
	row += 2

	set("A", "Coach Feedback")
	set("B", fb.Feedback)
	row++
	set("A", "AI Vision")
	set("B", fb.AIVision)
	row += 2

	writeNotes := func(heading string, notes []content.TraitNote) {
		set("A", heading)
		row++
		for _, n := range notes {
			set("A", n.Title)
			set("B", n.Description)
			row++
		}
		row++
	}
	writeNotes("Strengths", fb.Strengths)
	writeNotes("Growth Areas", fb.Weaknesses)
	writeNotes("Next Steps", fb.ImprovementAreas)

	if len(turns) > 0 {
		set("A", "Interview Transcript")
		row++
		for i, t := range turns {
			set("A", fmt.Sprintf("Q%d", i+1))
			set("B", t.Question)
			row++
			set("A", fmt.Sprintf("A%d", i+1))
			set("B", t.Answer)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// RosterWorkbook renders a teacher's imported roster into a workbook, one
// student per row, in the order the roster provides.
func RosterWorkbook(entries []profile.RosterEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Name", "Grade", "Progress %", "Streak", "Status"}
	headers = append(headers, profile.Dimensions...)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(rosterSheet, cell, h)
	}

	for r, e := range entries {
		values := []any{e.Name, e.Grade, e.Progress, e.Streak, string(e.Status)}
		for _, dim := range profile.Dimensions {
			values = append(values, e.Scores[dim])
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("roster cell: %w", err)
			}
			f.SetCellValue(rosterSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// OpenWorkbook parses workbook bytes, for callers that need to inspect what
// was rendered.
func OpenWorkbook(data []byte) (*excelize.File, error) {
	return excelize.OpenReader(bytes.NewReader(data))
}
