package profile

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RosterStatus reflects how far through the curriculum a roster entry is.
type RosterStatus string

const (
	StatusActive    RosterStatus = "Active"
	StatusCompleted RosterStatus = "Completed"
)

// RosterEntry is one student row on a teacher's dashboard, built from an
// imported sync code rather than a live account.
type RosterEntry struct {
	Name             string       `json:"name"`
	Grade            string       `json:"grade"`
	Scores           Scores       `json:"scores"`
	Progress         int          `json:"progress"`
	Streak           int          `json:"streak"`
	CompletedModules []string     `json:"completedModules,omitempty"`
	History          []Snapshot   `json:"history,omitempty"`
	Status           RosterStatus `json:"status"`
}

// Roster is a teacher's imported-student list. Entries are keyed by student
// name; re-importing a name overwrites the previous entry.
type Roster struct {
	mu      sync.RWMutex
	entries map[string]RosterEntry
	coll    *collate.Collator
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		entries: make(map[string]RosterEntry),
		coll:    collate.New(language.English, collate.IgnoreCase),
	}
}

// ImportSyncCode decodes a student's sync code and upserts the roster entry.
// A malformed code returns an error and leaves the roster unchanged.
func (r *Roster) ImportSyncCode(code string) (RosterEntry, error) {
	data, err := DecodeSyncCode(code)
	if err != nil {
		return RosterEntry{}, err
	}

	entry := RosterEntry{
		Name:             data.Name,
		Grade:            data.Grade,
		Scores:           data.Scores,
		Progress:         data.Progress,
		Streak:           data.Streak,
		CompletedModules: data.CompletedModules,
		History:          data.History,
		Status:           StatusActive,
	}
	if data.Progress >= 100 {
		entry.Status = StatusCompleted
	}

	r.mu.Lock()
	r.entries[entry.Name] = entry
	r.mu.Unlock()
	return entry, nil
}

// Entries returns all roster rows sorted by student name using
// locale-aware, case-insensitive collation.
func (r *Roster) Entries() []RosterEntry {
	r.mu.RLock()
	out := make([]RosterEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return r.coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// Remove deletes a student from the roster by name. Removing an absent name
// is a no-op.
func (r *Roster) Remove(name string) {
	r.mu.Lock()
	delete(r.entries, name)
	r.mu.Unlock()
}

// Len reports the number of imported students.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// AverageProgress is the rounded mean curriculum progress across the roster,
// or zero for an empty roster.
func (r *Roster) AverageProgress() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range r.entries {
		sum += e.Progress
	}
	return (sum + len(r.entries)/2) / len(r.entries)
}
