package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/agenda/pkg/project"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/task"
)

// memory is an in-memory Persistence that records documents the way the
// real store does: whole JSON arrays per key.
type memory struct {
	tasks      []byte
	projects   []byte
	taskSaves  int
	projSaves  int
	failWrites bool
}

func (m *memory) Tasks(_ context.Context) []*task.Task {
	list := make([]*task.Task, 0)
	if m.tasks != nil {
		_ = json.Unmarshal(m.tasks, &list)
	}
	for _, t := range list {
		t.Normalize()
	}
	return list
}

func (m *memory) SaveTasks(tasks []*task.Task) error {
	if m.failWrites {
		return errors.New("write refused")
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	m.tasks = b
	m.taskSaves++
	return nil
}

func (m *memory) Projects(_ context.Context) []*project.Project {
	list := make([]*project.Project, 0)
	if m.projects != nil {
		_ = json.Unmarshal(m.projects, &list)
	}
	for _, p := range list {
		p.Normalize()
	}
	return list
}

func (m *memory) SaveProjects(projects []*project.Project) error {
	if m.failWrites {
		return errors.New("write refused")
	}
	b, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	m.projects = b
	m.projSaves++
	return nil
}

func (m *memory) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func date(t *testing.T, v string) task.Date {
	t.Helper()
	d, err := task.ParseDate(v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

func newService(t *testing.T, p store.Persistence) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestAddTaskPersists(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)

	got, c, err := svc.AddTask(context.Background(), "water plants", "the ferns", date(t, "2026-03-02"), task.Low, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected an id")
	}
	if c.Op != OpAdd || c.Kind != KindTask || c.ID != got.ID {
		t.Fatalf("unexpected change: %+v", c)
	}
	if m.taskSaves != 1 {
		t.Fatalf("expected one save, got %d", m.taskSaves)
	}

	// A fresh service over the same persistence sees the task.
	again := newService(t, m)
	if len(again.Todos.List()) != 1 {
		t.Fatalf("expected task to survive reload")
	}
	if again.Todos.List()[0].Title != "water plants" {
		t.Fatalf("unexpected title after reload")
	}
}

func TestDeleteTaskByID(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	got, _, _ := svc.AddTask(context.Background(), "one", "", date(t, "2026-03-02"), task.Low, "")

	c, err := svc.DeleteTask(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Op != OpDelete || c.ID != got.ID {
		t.Fatalf("unexpected change: %+v", c)
	}
	if len(svc.Todos.List()) != 0 {
		t.Fatalf("expected empty collection")
	}

	// Unknown id is a silent no-op.
	c, err = svc.DeleteTask(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Empty() {
		t.Fatalf("expected no-op change, got %+v", c)
	}
}

func TestDeleteTaskMatchingRemovesAllTupleMatches(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	due := date(t, "2026-03-02")
	svc.AddTask(ctx, "dup", "same", due, task.Low, "")
	svc.AddTask(ctx, "dup", "same", due, task.Low, "")
	svc.AddTask(ctx, "dup", "other", due, task.Low, "")

	c, err := svc.DeleteTaskMatching(ctx, "dup", "same", "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Empty() {
		t.Fatalf("expected a change")
	}
	left := svc.Todos.List()
	if len(left) != 1 {
		t.Fatalf("expected both tuple matches removed, %d tasks left", len(left))
	}
	if left[0].Description != "other" {
		t.Fatalf("wrong task survived: %+v", left[0])
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	got, _, _ := svc.AddTask(context.Background(), "call dentist", "", date(t, "2026-03-02"), task.Low, "")
	saves := m.taskSaves

	c, err := svc.CompleteTask(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Op != OpUpdate {
		t.Fatalf("unexpected change: %+v", c)
	}
	if !svc.Todos.Get(got.ID).Completed {
		t.Fatalf("expected task to be completed")
	}
	if m.taskSaves != saves+1 {
		t.Fatalf("expected one save for the completion")
	}

	// Completing again does not rewrite the document.
	if _, err := svc.CompleteTask(context.Background(), got.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.taskSaves != saves+1 {
		t.Fatalf("second completion should not save again")
	}
	if !svc.Todos.Get(got.ID).Completed {
		t.Fatalf("task should stay completed")
	}

	// Unknown id no-ops.
	c, err = svc.CompleteTask(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Empty() {
		t.Fatalf("expected no-op change, got %+v", c)
	}
}

func TestReopenTask(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	got, _, _ := svc.AddTask(context.Background(), "call dentist", "", date(t, "2026-03-02"), task.Low, "")
	svc.CompleteTask(context.Background(), got.ID)

	if _, err := svc.ReopenTask(context.Background(), got.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Todos.Get(got.ID).Completed {
		t.Fatalf("expected task to be open again")
	}
}

func TestAddTaskResolvesProjectTitle(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	p, _, err := svc.AddProject(ctx, "garden")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _, err := svc.AddTask(ctx, "water plants", "", date(t, "2026-03-02"), task.Low, "garden")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProjectID != p.ID {
		t.Fatalf("expected project reference %q, got %q", p.ID, got.ProjectID)
	}

	// An unknown title leaves the task unassigned rather than failing.
	loose, _, err := svc.AddTask(ctx, "stray", "", date(t, "2026-03-02"), task.Low, "no such project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loose.ProjectID != "" {
		t.Fatalf("expected unassigned task, got project %q", loose.ProjectID)
	}
}

func TestAddProjectRejectsDuplicates(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	if _, _, err := svc.AddProject(ctx, "garden"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.AddProject(ctx, "Garden"); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
	if _, _, err := svc.AddProject(ctx, "  "); err == nil {
		t.Fatalf("expected empty title to be rejected")
	}
	if len(svc.Projects.List()) != 1 {
		t.Fatalf("rejected adds should not grow the collection")
	}
}

func TestDeleteProjectOrphansTasks(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	p, _, _ := svc.AddProject(ctx, "garden")
	a, _, _ := svc.AddTask(ctx, "water plants", "", date(t, "2026-03-02"), task.Low, "garden")
	b, _, _ := svc.AddTask(ctx, "weed beds", "", date(t, "2026-03-03"), task.Low, "garden")
	loose, _, _ := svc.AddTask(ctx, "unrelated", "", date(t, "2026-03-04"), task.Low, "")

	c, err := svc.DeleteProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Op != OpDelete || c.Kind != KindProject {
		t.Fatalf("unexpected change: %+v", c)
	}
	if c.Orphaned != 2 {
		t.Fatalf("expected 2 orphaned tasks, got %d", c.Orphaned)
	}
	if svc.Projects.Get(p.ID) != nil {
		t.Fatalf("project should be gone")
	}
	// Member tasks survive with the reference cleared.
	for _, id := range []string{a.ID, b.ID} {
		got := svc.Todos.Get(id)
		if got == nil {
			t.Fatalf("member task deleted along with its project")
		}
		if got.ProjectID != "" {
			t.Fatalf("expected cleared reference, got %q", got.ProjectID)
		}
	}
	if svc.Todos.Get(loose.ID).ProjectID != "" {
		t.Fatalf("unrelated task touched")
	}

	// Reload from persistence: the cleared references were written, not
	// just held in memory.
	again := newService(t, m)
	for _, got := range again.Todos.List() {
		if got.ProjectID != "" {
			t.Fatalf("dangling reference survived persistence: %+v", got)
		}
	}
}

func TestDeleteProjectByTitle(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	svc.AddProject(ctx, "garden")

	if _, err := svc.DeleteProjectByTitle(ctx, "garden"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.DeleteProjectByTitle(ctx, "garden"); err == nil {
		t.Fatalf("expected error for unknown project")
	}
}

func TestReassignTask(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	p, _, _ := svc.AddProject(ctx, "garden")
	got, _, _ := svc.AddTask(ctx, "water plants", "", date(t, "2026-03-02"), task.Low, "")

	c, err := svc.ReassignTask(ctx, got.ID, "garden")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Empty() {
		t.Fatalf("expected a change")
	}
	if svc.Todos.Get(got.ID).ProjectID != p.ID {
		t.Fatalf("expected task to point at the project")
	}

	// Unknown title is a silent no-op.
	c, err = svc.ReassignTask(ctx, got.ID, "no such project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Empty() {
		t.Fatalf("expected no-op change")
	}
	if svc.Todos.Get(got.ID).ProjectID != p.ID {
		t.Fatalf("assignment should be untouched")
	}

	// Empty title clears the assignment.
	if _, err := svc.ReassignTask(ctx, got.ID, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Todos.Get(got.ID).ProjectID != "" {
		t.Fatalf("expected cleared assignment")
	}
}

func TestProjectTitleResolvesDangling(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	got := task.New("stray", "", date(t, "2026-03-02"), task.Low, "no-such-id")
	if title := svc.ProjectTitle(got); title != "" {
		t.Fatalf("expected dangling reference to render empty, got %q", title)
	}
}

func TestFindTask(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	ctx := context.Background()
	a, _, _ := svc.AddTask(ctx, "unique", "", date(t, "2026-03-02"), task.Low, "")
	svc.AddTask(ctx, "dup", "", date(t, "2026-03-02"), task.Low, "")
	svc.AddTask(ctx, "dup", "", date(t, "2026-03-03"), task.Low, "")

	if got, err := svc.FindTask(a.ID); err != nil || got.ID != a.ID {
		t.Fatalf("expected lookup by id to win: %v", err)
	}
	if got, err := svc.FindTask("unique"); err != nil || got.ID != a.ID {
		t.Fatalf("expected unique title lookup: %v", err)
	}
	if _, err := svc.FindTask("dup"); err == nil {
		t.Fatalf("expected ambiguous title to error")
	}
	if _, err := svc.FindTask("missing"); err == nil {
		t.Fatalf("expected unknown reference to error")
	}
}

func TestSaveFailureSurfaces(t *testing.T) {
	m := &memory{}
	svc := newService(t, m)
	m.failWrites = true
	if _, _, err := svc.AddTask(context.Background(), "x", "", date(t, "2026-03-02"), task.Low, ""); err == nil {
		t.Fatalf("expected save failure to surface")
	}
	if _, _, err := svc.AddProject(context.Background(), "garden"); err == nil {
		t.Fatalf("expected save failure to surface")
	}
}
