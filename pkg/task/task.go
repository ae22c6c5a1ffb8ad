package task

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/glyph"
)

// New constructs an open task. The id is assigned here so every task is
// addressable for its whole lifetime, even when two tasks share the same
// title, description and due date.
func New(title, description string, due Date, priority Priority, projectID string) *Task {
	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
		ProjectID:   projectID,
	}
}

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     Date     `json:"dueDate"`
	Priority    Priority `json:"priority,omitempty"`
	ProjectID   string   `json:"project,omitempty"`
	Completed   bool     `json:"completed"`
}

// Normalize repairs records written by older versions: tasks persisted
// before ids existed get one assigned, tasks persisted before the completed
// field existed keep the zero value false, and a blank priority becomes Low.
func (t *Task) Normalize() {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Priority == "" {
		t.Priority = Low
	}
}

// Matches reports whether the task matches the legacy identity tuple of
// title, description and due date. Used to address tasks from user input
// when no id is given; every tuple match is treated as the same task.
func (t *Task) Matches(title, description, due string) bool {
	return t.Title == title && t.Description == description && t.DueDate.String() == due
}

func (t *Task) Complete() {
	t.Completed = true
}

func (t *Task) Status() glyph.Status {
	if t.Completed {
		return glyph.Completed
	}
	return glyph.Open
}

func (t *Task) Row() (string, string, string, string) {
	return t.Status().String(), t.Title, t.DueDate.String(), t.Priority.Glyph().String()
}

func (t *Task) String() string {
	s := fmt.Sprintf("%s %s  %s", t.Status().String(), t.DueDate.String(), t.Title)
	if t.Completed {
		return glyph.Strike(s)
	}
	return s
}

// Priority is the stored priority level. The persisted form is the
// capitalized word so documents written by earlier versions read back
// unchanged.
type Priority string

const (
	Low    Priority = "Low"
	Medium Priority = "Medium"
	High   Priority = "High"
)

// ParsePriority accepts any casing and returns Low for unrecognized input
// rather than failing; priority is cosmetic, not load-bearing.
func ParsePriority(v string) Priority {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "high", "h":
		return High
	case "medium", "med", "m":
		return Medium
	default:
		return Low
	}
}

func (p Priority) Glyph() glyph.Glyph {
	switch p {
	case High:
		return glyph.High.Glyph()
	case Medium:
		return glyph.Medium.Glyph()
	default:
		return glyph.Low.Glyph()
	}
}
