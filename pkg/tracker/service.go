package tracker

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/project"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/task"
)

// Service provides the cross-store use cases. It wraps the two stores so
// UIs and the CLI share one mutation surface, and every mutation reports a
// Change describing what the view layer must rebuild.
type Service struct {
	Todos    *TodoStore
	Projects *ProjectStore
}

// NewService loads both collections from persistence.
func NewService(ctx context.Context, p store.Persistence) (*Service, error) {
	todos, err := NewTodoStore(ctx, p)
	if err != nil {
		return nil, err
	}
	projects, err := NewProjectStore(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Service{Todos: todos, Projects: projects}, nil
}

// AddTask creates a task, resolving an optional project title to its id.
// A project title that matches nothing leaves the task unassigned rather
// than failing; a missing reference is recoverable, not fatal.
func (s *Service) AddTask(ctx context.Context, title, description string, due task.Date, priority task.Priority, projectTitle string) (*task.Task, Change, error) {
	projectID := ""
	if projectTitle != "" {
		if p := s.Projects.FindByTitle(projectTitle); p != nil {
			projectID = p.ID
		}
	}
	t, err := s.Todos.Add(title, description, due, priority, projectID)
	if err != nil {
		return nil, Change{}, err
	}
	return t, Change{Op: OpAdd, Kind: KindTask, ID: t.ID, Title: t.Title}, nil
}

// DeleteTask removes the task with the given id.
func (s *Service) DeleteTask(ctx context.Context, id string) (Change, error) {
	t := s.Todos.Get(id)
	removed, err := s.Todos.Delete(id)
	if err != nil {
		return Change{}, err
	}
	if removed == 0 {
		return Change{}, nil
	}
	c := Change{Op: OpDelete, Kind: KindTask, ID: id}
	if t != nil {
		c.Title = t.Title
	}
	return c, nil
}

// DeleteTaskMatching removes every task matching the legacy identity
// tuple.
func (s *Service) DeleteTaskMatching(ctx context.Context, title, description, due string) (Change, error) {
	removed, err := s.Todos.DeleteMatching(title, description, due)
	if err != nil {
		return Change{}, err
	}
	if removed == 0 {
		return Change{}, nil
	}
	return Change{Op: OpDelete, Kind: KindTask, Title: title}, nil
}

// CompleteTask marks a task completed. Unknown ids no-op.
func (s *Service) CompleteTask(ctx context.Context, id string) (Change, error) {
	return s.setCompleted(id, true)
}

// ReopenTask clears the completed flag. Unknown ids no-op.
func (s *Service) ReopenTask(ctx context.Context, id string) (Change, error) {
	return s.setCompleted(id, false)
}

func (s *Service) setCompleted(id string, done bool) (Change, error) {
	t, err := s.Todos.SetCompleted(id, done)
	if err != nil {
		return Change{}, err
	}
	if t == nil {
		return Change{}, nil
	}
	return Change{Op: OpUpdate, Kind: KindTask, ID: t.ID, Title: t.Title}, nil
}

// ReassignTask points a task at the project with the given title. An empty
// title clears the assignment; an unknown title is a silent no-op, same as
// the missing-reference rule on add.
func (s *Service) ReassignTask(ctx context.Context, id, projectTitle string) (Change, error) {
	projectID := ""
	if projectTitle != "" {
		p := s.Projects.FindByTitle(projectTitle)
		if p == nil {
			return Change{}, nil
		}
		projectID = p.ID
	}
	t, err := s.Todos.Reassign(id, projectID)
	if err != nil {
		return Change{}, err
	}
	if t == nil {
		return Change{}, nil
	}
	return Change{Op: OpUpdate, Kind: KindTask, ID: t.ID, Title: t.Title}, nil
}

// AddProject creates a project. Duplicate titles are rejected.
func (s *Service) AddProject(ctx context.Context, title string) (*project.Project, Change, error) {
	p, err := s.Projects.Add(title)
	if err != nil {
		return nil, Change{}, err
	}
	return p, Change{Op: OpAdd, Kind: KindProject, ID: p.ID, Title: p.Title}, nil
}

// DeleteProjectByTitle resolves a title and runs the delete use case.
func (s *Service) DeleteProjectByTitle(ctx context.Context, title string) (Change, error) {
	p := s.Projects.FindByTitle(title)
	if p == nil {
		return Change{}, fmt.Errorf("tracker: no project named %q", title)
	}
	return s.DeleteProject(ctx, p.ID)
}

// DeleteProject removes a project and repairs orphans in the same
// operation: every task referencing the project has its reference cleared
// and the task collection is re-persisted before control returns. The
// referencing tasks are never deleted.
func (s *Service) DeleteProject(ctx context.Context, id string) (Change, error) {
	p := s.Projects.Get(id)
	removed, err := s.Projects.Delete(id)
	if err != nil {
		return Change{}, err
	}
	if removed == 0 {
		return Change{}, nil
	}
	orphaned, err := s.Todos.ClearProject(id)
	if err != nil {
		return Change{}, fmt.Errorf("tracker: project removed but orphan repair failed: %w", err)
	}
	c := Change{Op: OpDelete, Kind: KindProject, ID: id, Orphaned: orphaned}
	if p != nil {
		c.Title = p.Title
	}
	return c, nil
}

// ProjectTitle resolves a task's project reference for display. Dangling
// references render as empty rather than erroring.
func (s *Service) ProjectTitle(t *task.Task) string {
	if t == nil || t.ProjectID == "" {
		return ""
	}
	if p := s.Projects.Get(t.ProjectID); p != nil {
		return p.Title
	}
	return ""
}

// FindTask locates a task by id first, then falls back to a unique title
// match so commands can accept either. Ambiguous titles are an error; ids
// exist precisely so the ambiguity is escapable.
func (s *Service) FindTask(ref string) (*task.Task, error) {
	if t := s.Todos.Get(ref); t != nil {
		return t, nil
	}
	var found *task.Task
	for _, t := range s.Todos.List() {
		if t.Title == ref {
			if found != nil {
				return nil, fmt.Errorf("tracker: %q matches more than one task, use its id", ref)
			}
			found = t
		}
	}
	if found == nil {
		return nil, errors.New("tracker: task not found")
	}
	return found, nil
}
