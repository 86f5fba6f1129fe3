package store

import (
	"time"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// Task is the on-disk representation of a work item: YAML front-matter plus
// a free markdown body, one file per task under tasks/.
type Task struct {
	// Frontmatter fields
	Title     string    `yaml:"title"`
	Type      string    `yaml:"type,omitempty"`
	Status    string    `yaml:"status"`
	Priority  int       `yaml:"priority,omitempty"`
	Remaining float64   `yaml:"remaining,omitempty"`
	DependsOn DepList   `yaml:"depends_on,omitempty"`
	Tags      []string  `yaml:"tags,omitempty"`
	Parallel  bool      `yaml:"parallel,omitempty"`
	Created   time.Time `yaml:"created,omitempty"`
	Updated   time.Time `yaml:"updated,omitempty"`

	// Parsed from markdown body
	Body string `yaml:"-"`

	// Filesystem metadata (not serialized to YAML)
	ID       string `yaml:"-"` // file name without .md
	FilePath string `yaml:"-"` // absolute path to the task file
}

// WorkItem converts the on-disk task into the normalized engine model.
func (t *Task) WorkItem() item.WorkItem {
	w := item.WorkItem{
		ID:        t.ID,
		Title:     t.Title,
		Type:      item.CanonicalType(t.Type),
		Status:    item.CanonicalStatus(t.Status),
		DependsOn: t.DependsOn,
		Priority:  t.Priority,
		Remaining: t.Remaining,
		Tags:      t.Tags,
		Parallel:  t.Parallel,
	}
	w.Normalize()
	return w
}

// IsClosed reports whether the task is in a resolved state.
func (t *Task) IsClosed() bool {
	return item.CanonicalStatus(t.Status) == item.StatusClosed
}
