package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/agenda/pkg/project"
	"tableflip.dev/agenda/pkg/task"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func load(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p, dir
}

func date(t *testing.T, v string) task.Date {
	t.Helper()
	d, err := task.ParseDate(v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

func TestTasksRoundTrip(t *testing.T) {
	p, _ := load(t)
	ctx := context.Background()

	if got := p.Tasks(ctx); len(got) != 0 {
		t.Fatalf("expected empty store, got %d tasks", len(got))
	}

	in := []*task.Task{
		task.New("water plants", "the ferns", date(t, "2026-03-02"), task.High, "p1"),
		task.New("pay rent", "", date(t, "2026-03-01"), task.Low, ""),
	}
	in[1].Complete()
	if err := p.SaveTasks(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.Tasks(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].Title != "water plants" || got[0].Description != "the ferns" {
		t.Fatalf("unexpected first task: %+v", got[0])
	}
	if got[0].DueDate.String() != "2026-03-02" {
		t.Fatalf("due date did not survive: %q", got[0].DueDate.String())
	}
	if got[0].Priority != task.High || got[0].ProjectID != "p1" {
		t.Fatalf("fields did not survive: %+v", got[0])
	}
	if !got[1].Completed {
		t.Fatalf("completed flag did not survive")
	}
}

func TestProjectsRoundTrip(t *testing.T) {
	p, _ := load(t)
	ctx := context.Background()

	in := []*project.Project{project.New("garden"), project.New("work")}
	if err := p.SaveProjects(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Projects(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].Title != "garden" || got[0].ID != in[0].ID {
		t.Fatalf("unexpected project: %+v", got[0])
	}
}

func TestTasksNormalizedOnLoad(t *testing.T) {
	p, dir := load(t)

	// A document written before ids, priorities and the completed flag
	// existed loads with defaults applied.
	legacy := `[{"title":"old","description":"","dueDate":"2026-03-01"}]`
	if err := os.WriteFile(filepath.Join(dir, KeyTodos), []byte(legacy), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.Tasks(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].Completed {
		t.Fatalf("expected completed to default to false")
	}
	if got[0].ID == "" {
		t.Fatalf("expected an id to be assigned on load")
	}
	if got[0].Priority != task.Low {
		t.Fatalf("expected default priority, got %q", got[0].Priority)
	}
}

func TestMalformedDocumentReadsEmpty(t *testing.T) {
	p, dir := load(t)

	if err := os.WriteFile(filepath.Join(dir, KeyTodos), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Tasks(context.Background()); len(got) != 0 {
		t.Fatalf("expected malformed document to read as empty, got %d", len(got))
	}
}

func TestPartiallyMalformedDocumentReadsEmpty(t *testing.T) {
	p, dir := load(t)

	// Unmarshal fills the slice element by element before hitting the bad
	// value; none of the partial records may leak out, or the next save
	// would persist phantom tasks.
	doc := `[{"title":"kept","dueDate":"2026-03-01"},42]`
	if err := os.WriteFile(filepath.Join(dir, KeyTodos), []byte(doc), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Tasks(context.Background()); len(got) != 0 {
		t.Fatalf("expected partially malformed document to read as empty, got %d tasks", len(got))
	}

	doc = `[{"id":"p1","title":"kept"},"oops"]`
	if err := os.WriteFile(filepath.Join(dir, KeyProjects), []byte(doc), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Projects(context.Background()); len(got) != 0 {
		t.Fatalf("expected partially malformed document to read as empty, got %d projects", len(got))
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	p, dir := load(t)
	if err := p.SaveTasks(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, KeyTodos))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected empty array document, got %q", b)
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(&testConfig{path: ""}); err == nil {
		t.Fatalf("expected error for missing base path")
	}
}
