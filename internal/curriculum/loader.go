package curriculum

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader loads curriculum modules and daily tasks from a directory tree of
// YAML files. Module files carry an `id` field; files named *.tasks.yaml hold
// daily-task lists.
type Loader struct {
	rootDir string
	modules map[string]Module
	tasks   []DailyTask
	mu      sync.RWMutex
}

// NewLoader creates a loader and reads all content under rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{
		rootDir: rootDir,
		modules: make(map[string]Module),
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading curriculum: %w", err)
	}

	slog.Info("curriculum loaded", "modules", len(l.modules), "daily_tasks", len(l.tasks))
	return l, nil
}

// Modules returns the loaded modules ordered by week, then ID.
func (l *Loader) Modules() []Module {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Module, 0, len(l.modules))
	for _, m := range l.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// DailyTasks returns the loaded daily tasks in file order.
func (l *Loader) DailyTasks() []DailyTask {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]DailyTask(nil), l.tasks...)
}

func (l *Loader) loadAll() error {
	return filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		switch {
		case strings.HasSuffix(path, ".tasks.yaml"), strings.HasSuffix(path, ".tasks.yml"):
			return l.loadTasks(path)
		case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
			return l.loadModule(path)
		}
		return nil
	})
}

func (l *Loader) loadModule(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var m Module
	if err := yaml.Unmarshal(data, &m); err != nil {
		slog.Warn("skipping invalid module YAML", "path", path, "error", err)
		return nil
	}

	if m.ID == "" {
		return nil // Not a module file
	}

	l.mu.Lock()
	l.modules[m.ID] = m
	l.mu.Unlock()

	return nil
}

func (l *Loader) loadTasks(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var tasks []DailyTask
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		slog.Warn("skipping invalid tasks YAML", "path", path, "error", err)
		return nil
	}

	l.mu.Lock()
	l.tasks = append(l.tasks, tasks...)
	l.mu.Unlock()

	return nil
}
