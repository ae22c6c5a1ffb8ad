package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/agenda/pkg/project"
	"tableflip.dev/agenda/pkg/task"
)

// Storage keys. Each key holds one JSON array covering the whole
// collection; every save overwrites the prior document.
const (
	KeyTodos    = "todos"
	KeyProjects = "projects"
)

// Persistence is the storage contract for the tracker. Loads never fail
// visibly: an absent or unreadable document reads back as an empty
// collection, with a warning on stderr for the unreadable case.
type Persistence interface {
	Tasks(ctx context.Context) []*task.Task
	SaveTasks(tasks []*task.Task) error
	Projects(ctx context.Context) []*project.Project
	SaveProjects(projects []*project.Project) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// read unmarshals the document at key into out and reports whether a
// document was decoded. A missing document is not an error; a malformed
// one is reported and treated as absent so a corrupt store never takes
// the whole tracker down. Unmarshal can fill part of the target before
// failing, so callers must discard out when read returns false.
func (p *persistence) read(key string, out interface{}) bool {
	val, err := p.d.Read(key)
	if err != nil {
		return false
	}
	if len(val) == 0 {
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: malformed document, starting empty: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) write(key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Tasks(_ context.Context) []*task.Task {
	list := make([]*task.Task, 0)
	if !p.read(KeyTodos, &list) {
		return []*task.Task{}
	}
	out := list[:0]
	for _, t := range list {
		if t == nil {
			continue
		}
		t.Normalize()
		out = append(out, t)
	}
	return out
}

func (p *persistence) SaveTasks(tasks []*task.Task) error {
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return p.write(KeyTodos, tasks)
}

func (p *persistence) Projects(_ context.Context) []*project.Project {
	list := make([]*project.Project, 0)
	if !p.read(KeyProjects, &list) {
		return []*project.Project{}
	}
	out := list[:0]
	for _, pr := range list {
		if pr == nil || strings.TrimSpace(pr.Title) == "" {
			continue
		}
		pr.Normalize()
		out = append(out, pr)
	}
	return out
}

func (p *persistence) SaveProjects(projects []*project.Project) error {
	if projects == nil {
		projects = []*project.Project{}
	}
	return p.write(KeyProjects, projects)
}

func flatTransform(_ string) []string {
	return []string{}
}
