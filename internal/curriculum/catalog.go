package curriculum

import (
	"strings"
	"sync"
	"time"
)

// Catalog holds the in-memory curriculum for the lifetime of the process.
// Modules are immutable once loaded except that an AI-evolved variant may
// replace the original in place (same position, evolved ID).
type Catalog struct {
	mu      sync.RWMutex
	modules []Module
	tasks   []DailyTask
}

// NewCatalog creates a catalog seeded with the given modules and daily tasks.
// Nil slices fall back to the built-in defaults.
func NewCatalog(modules []Module, tasks []DailyTask) *Catalog {
	if modules == nil {
		modules = DefaultModules()
	}
	if tasks == nil {
		tasks = DefaultDailyTasks()
	}
	return &Catalog{
		modules: append([]Module(nil), modules...),
		tasks:   append([]DailyTask(nil), tasks...),
	}
}

// Get returns the module with the given ID.
func (c *Catalog) Get(id string) (Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// All returns a copy of the module list in curriculum order.
func (c *Catalog) All() []Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Module(nil), c.modules...)
}

// Len returns the number of modules in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.modules)
}

// ReplaceEvolved installs an evolved variant of the module identified by
// originalID. The variant keeps the original's week and skills focus and takes
// the evolved ID. If the original is not present the variant is appended.
func (c *Catalog) ReplaceEvolved(originalID string, evolved Module) Module {
	c.mu.Lock()
	defer c.mu.Unlock()

	evolved.ID = EvolvedID(originalID)
	for i, m := range c.modules {
		if m.ID == originalID {
			evolved.Week = m.Week
			if len(evolved.SkillsFocus) == 0 {
				evolved.SkillsFocus = m.SkillsFocus
			}
			c.modules[i] = evolved
			return evolved
		}
	}
	if evolved.Week == 0 {
		evolved.Week = 1
	}
	if len(evolved.SkillsFocus) == 0 {
		evolved.SkillsFocus = []string{"communication"}
	}
	c.modules = append(c.modules, evolved)
	return evolved
}

// Overrides returns the evolved variants currently installed, in catalog
// order.
func (c *Catalog) Overrides() []Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Module
	for _, m := range c.modules {
		if strings.HasSuffix(m.ID, EvolvedSuffix) {
			out = append(out, m)
		}
	}
	return out
}

// ApplyOverrides reinstalls previously persisted evolved variants over their
// originals.
func (c *Catalog) ApplyOverrides(mods []Module) {
	for _, m := range mods {
		c.ReplaceEvolved(strings.TrimSuffix(m.ID, EvolvedSuffix), m)
	}
}

// ProgressPercent converts a set of completed module IDs into a 0-100
// curriculum completion percentage.
func (c *Catalog) ProgressPercent(completed []string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.modules) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(completed))
	count := 0
	for _, id := range completed {
		if seen[id] {
			continue
		}
		seen[id] = true
		count++
	}
	pct := (count*100 + len(c.modules)/2) / len(c.modules)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DailyTaskFor picks the task of the day by calendar date, rotating through the
// configured list.
func (c *Catalog) DailyTaskFor(t time.Time) DailyTask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.tasks) == 0 {
		return DailyTask{}
	}
	return c.tasks[t.Day()%len(c.tasks)]
}

// GradeQuiz scores option-index answers against a module's quiz. Missing
// answers count as wrong. The second return is true when every question was
// answered correctly (mastery, which unlocks module evolution).
func GradeQuiz(m Module, answers map[string]int) (int, bool) {
	if len(m.Quizzes) == 0 {
		return 0, true
	}
	correct := 0
	for _, q := range m.Quizzes {
		if picked, ok := answers[q.ID]; ok && picked == q.CorrectAnswer {
			correct++
		}
	}
	return correct, correct == len(m.Quizzes)
}
