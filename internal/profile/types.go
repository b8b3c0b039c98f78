package profile

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Role classifies an account.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Dimensions lists the skill dimensions tracked on every profile, in display
// order.
var Dimensions = []string{"communication", "confidence", "teamwork", "problemSolving"}

// maxHistory bounds the score history; oldest entries are evicted first.
const maxHistory = 10

// Scores maps skill dimension to a 0-100 value. A zero value means the
// dimension has not been assessed yet.
type Scores map[string]int

// Clamped returns a copy with every dimension forced into [0, 100].
func (s Scores) Clamped() Scores {
	out := make(Scores, len(Dimensions))
	for _, dim := range Dimensions {
		out[dim] = clampScore(s[dim])
	}
	return out
}

// Average returns the rounded mean across all dimensions.
func (s Scores) Average() int {
	if len(Dimensions) == 0 {
		return 0
	}
	sum := 0
	for _, dim := range Dimensions {
		sum += clampScore(s[dim])
	}
	return (sum + len(Dimensions)/2) / len(Dimensions)
}

func (s Scores) clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Snapshot is one dated entry in the score history.
type Snapshot struct {
	Date   string `json:"date"`
	Scores Scores `json:"scores"`
}

// Profile is a persisted user account with cumulative assessment state.
type Profile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	ClassSection     string     `json:"classSection"`
	Role             Role       `json:"role"`
	PasswordHash     string     `json:"-"`
	Progress         int        `json:"progress"`
	Scores           Scores     `json:"scores"`
	ScoreHistory     []Snapshot `json:"scoreHistory,omitempty"`
	CompletedModules []string   `json:"completedModules"`
	AskedQuestions   []string   `json:"askedQuestions,omitempty"`
	Streak           int        `json:"streak"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy so stores never hand out shared slices or maps.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Scores = p.Scores.clone()
	out.ScoreHistory = make([]Snapshot, len(p.ScoreHistory))
	for i, snap := range p.ScoreHistory {
		out.ScoreHistory[i] = Snapshot{Date: snap.Date, Scores: snap.Scores.clone()}
	}
	out.CompletedModules = append([]string(nil), p.CompletedModules...)
	out.AskedQuestions = append([]string(nil), p.AskedQuestions...)
	return &out
}

// CompleteModule marks a module as done (idempotent) and records the new
// curriculum progress percentage.
func (p *Profile) CompleteModule(moduleID string, progressPercent int) {
	for _, id := range p.CompletedModules {
		if id == moduleID {
			p.Progress = clampScore(progressPercent)
			return
		}
	}
	p.CompletedModules = append(p.CompletedModules, moduleID)
	p.Progress = clampScore(progressPercent)
}

func generateID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
