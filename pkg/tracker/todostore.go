// Package tracker owns the in-memory task and project collections and
// keeps them in lockstep with persisted storage: every mutation saves the
// whole collection before returning, so storage and memory never diverge
// between two interactions.
package tracker

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/task"
)

// TodoStore owns the task collection.
type TodoStore struct {
	p     store.Persistence
	tasks []*task.Task
}

// NewTodoStore loads the persisted task collection and returns a store
// over it. An absent document yields an empty collection.
func NewTodoStore(ctx context.Context, p store.Persistence) (*TodoStore, error) {
	if p == nil {
		return nil, errors.New("tracker: no persistence configured")
	}
	s := &TodoStore{p: p}
	s.Load(ctx)
	return s, nil
}

// Load replaces the in-memory collection with persisted state. Records are
// normalized on the way in (missing completed defaults to false, missing
// ids are assigned); the stored document is not rewritten until the next
// save.
func (s *TodoStore) Load(ctx context.Context) {
	s.tasks = s.p.Tasks(ctx)
}

// Save serializes the full collection, overwriting the prior document.
func (s *TodoStore) Save() error {
	return s.p.SaveTasks(s.tasks)
}

// List returns the live collection. Callers treat it as read-only and go
// through mutation methods so every change is persisted.
func (s *TodoStore) List() []*task.Task {
	return s.tasks
}

// Get finds a task by id, or nil.
func (s *TodoStore) Get(id string) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Add appends a new open task and persists. The store performs no input
// validation; rejecting an empty title or a bad date is the command
// boundary's job.
func (s *TodoStore) Add(title, description string, due task.Date, priority task.Priority, projectID string) (*task.Task, error) {
	t := task.New(title, description, due, priority, projectID)
	s.tasks = append(s.tasks, t)
	if err := s.Save(); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the task with the given id and persists. Returns the
// number of tasks removed (zero when the id is unknown).
func (s *TodoStore) Delete(id string) (int, error) {
	return s.remove(func(t *task.Task) bool { return t.ID == id })
}

// DeleteMatching removes every task matching the legacy identity tuple of
// title, description and due date, then persists. All tuple matches go.
func (s *TodoStore) DeleteMatching(title, description, due string) (int, error) {
	return s.remove(func(t *task.Task) bool { return t.Matches(title, description, due) })
}

func (s *TodoStore) remove(match func(*task.Task) bool) (int, error) {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if match(t) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, s.Save()
}

// MarkCompleted sets completed on the task with the given id and persists.
// Completing a completed task is a no-op. An unknown id is silently
// ignored and returns nil.
func (s *TodoStore) MarkCompleted(id string) (*task.Task, error) {
	return s.SetCompleted(id, true)
}

// SetCompleted writes the completed flag directly, covering the view's
// checkbox toggle in both directions.
func (s *TodoStore) SetCompleted(id string, done bool) (*task.Task, error) {
	t := s.Get(id)
	if t == nil {
		return nil, nil
	}
	if t.Completed == done {
		return t, nil
	}
	t.Completed = done
	if err := s.Save(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reassign points the task at a new project id (empty clears the
// reference) and persists.
func (s *TodoStore) Reassign(id, projectID string) (*task.Task, error) {
	t := s.Get(id)
	if t == nil {
		return nil, nil
	}
	if t.ProjectID == projectID {
		return t, nil
	}
	t.ProjectID = projectID
	if err := s.Save(); err != nil {
		return nil, err
	}
	return t, nil
}

// ClearProject nulls the project reference on every task pointing at the
// given project id and persists. The tasks themselves survive.
func (s *TodoStore) ClearProject(projectID string) (int, error) {
	if projectID == "" {
		return 0, nil
	}
	cleared := 0
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			t.ProjectID = ""
			cleared++
		}
	}
	if cleared == 0 {
		return 0, nil
	}
	return cleared, s.Save()
}
