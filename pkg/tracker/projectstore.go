package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/agenda/pkg/project"
	"tableflip.dev/agenda/pkg/store"
)

// ErrDuplicateTitle is returned when adding a project whose title is
// already taken. Titles are the user-facing handle for projects, so
// duplicates would make every lookup ambiguous.
var ErrDuplicateTitle = errors.New("tracker: project title already exists")

// ProjectStore owns the project collection.
type ProjectStore struct {
	p        store.Persistence
	projects []*project.Project
}

// NewProjectStore loads the persisted project collection.
func NewProjectStore(ctx context.Context, p store.Persistence) (*ProjectStore, error) {
	if p == nil {
		return nil, errors.New("tracker: no persistence configured")
	}
	s := &ProjectStore{p: p}
	s.Load(ctx)
	return s, nil
}

// Load replaces the in-memory collection with persisted state.
func (s *ProjectStore) Load(ctx context.Context) {
	s.projects = s.p.Projects(ctx)
}

// Save serializes the full collection, overwriting the prior document.
func (s *ProjectStore) Save() error {
	return s.p.SaveProjects(s.projects)
}

// List returns the live collection.
func (s *ProjectStore) List() []*project.Project {
	return s.projects
}

// Get finds a project by id, or nil.
func (s *ProjectStore) Get(id string) *project.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindByTitle finds the first project with the given title (trimmed,
// case-insensitive), or nil.
func (s *ProjectStore) FindByTitle(title string) *project.Project {
	for _, p := range s.projects {
		if p.SameTitle(title) {
			return p
		}
	}
	return nil
}

// Add appends a new project and persists. Titles must be non-empty and
// unique.
func (s *ProjectStore) Add(title string) (*project.Project, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("tracker: project title required")
	}
	if s.FindByTitle(title) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}
	p := project.New(title)
	s.projects = append(s.projects, p)
	if err := s.Save(); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project with the given id and persists. Member tasks
// are not touched here; orphan repair is the delete-project use case's
// job, see Service.DeleteProject.
func (s *ProjectStore) Delete(id string) (int, error) {
	kept := s.projects[:0]
	removed := 0
	for _, p := range s.projects {
		if p.ID == id {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, s.Save()
}
