// Package store manages the filesystem-backed work-item data: one markdown
// file per task with YAML front-matter, under <root>/tasks/.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// Store manages the filesystem-backed task data.
type Store struct {
	Root string // e.g., ~/.wrangle

	// warnings collected during the last List: files that failed to parse
	// and were skipped. Reporting commands surface these; nothing fails.
	warnings []string
}

// NewStore creates a Store rooted at the given directory, creating the
// directory structure if it doesn't exist.
func NewStore(root string) (*Store, error) {
	tasksDir := filepath.Join(root, "tasks")
	if err := os.MkdirAll(tasksDir, 0755); err != nil {
		return nil, fmt.Errorf("creating tasks directory: %w", err)
	}
	return &Store{Root: root}, nil
}

// TasksDir returns the path to the tasks directory.
func (s *Store) TasksDir() string {
	return filepath.Join(s.Root, "tasks")
}

// taskPath returns the path to a task's markdown file.
func (s *Store) taskPath(id string) string {
	return filepath.Join(s.TasksDir(), id+".md")
}

// Load reads a single task by id.
func (s *Store) Load(id string) (*Task, error) {
	filePath := s.taskPath(id)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading task %s: %w", id, err)
	}

	task, err := ParseFrontmatter(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing task %s: %w", id, err)
	}

	task.ID = id
	task.FilePath = filePath
	return task, nil
}

// LoadAll reads every task file under tasks/, sorted by id. Files that fail
// to parse are skipped and recorded as warnings.
func (s *Store) LoadAll() ([]*Task, error) {
	entries, err := os.ReadDir(s.TasksDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tasks directory: %w", err)
	}

	s.warnings = nil
	var tasks []*Task
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		id := strings.TrimSuffix(name, ".md")
		task, err := s.Load(id)
		if err != nil {
			s.warnings = append(s.warnings, err.Error())
			continue
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// List returns the normalized work-item snapshot. It implements item.Source.
func (s *Store) List() ([]item.WorkItem, error) {
	tasks, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	items := make([]item.WorkItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, t.WorkItem())
	}
	return items, nil
}

// Warnings returns data-quality warnings collected by the last LoadAll.
func (s *Store) Warnings() []string {
	return s.warnings
}

// Save writes a task to disk atomically.
func (s *Store) Save(t *Task) error {
	t.Updated = time.Now()

	content, err := SerializeFrontmatter(t)
	if err != nil {
		return fmt.Errorf("serializing task: %w", err)
	}

	filePath := s.taskPath(t.ID)
	t.FilePath = filePath
	if err := atomic.WriteFile(filePath, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing task %s: %w", t.ID, err)
	}
	return nil
}

// Create creates a new task file from the given template. The id is derived
// from the title unless already set.
func (s *Store) Create(t *Task) (*Task, error) {
	if t.ID == "" {
		t.ID = Slugify(t.Title)
	}
	if t.ID == "" {
		return nil, fmt.Errorf("task needs a title or an id")
	}

	if _, err := os.Stat(s.taskPath(t.ID)); err == nil {
		return nil, fmt.Errorf("task %s already exists", t.ID)
	}

	if t.Status == "" {
		t.Status = string(item.StatusOpen)
	}
	now := time.Now()
	t.Created = now
	t.Updated = now

	if err := s.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetStatus transitions a task to the given status and persists it.
func (s *Store) SetStatus(id string, status item.Status) (*Task, error) {
	task, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	task.Status = string(status)
	if err := s.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task file.
func (s *Store) Delete(id string) error {
	if _, err := os.Stat(s.taskPath(id)); os.IsNotExist(err) {
		return fmt.Errorf("task %s not found", id)
	}
	return os.Remove(s.taskPath(id))
}

// Slugify derives a file-name-safe task id from a title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
