// Package project defines the project record: a named grouping that tasks
// reference by id.
package project

import (
	"strings"

	"github.com/google/uuid"
)

// New constructs a project with a fresh id.
func New(title string) *Project {
	return &Project{
		ID:    uuid.NewString(),
		Title: title,
	}
}

type Project struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Normalize assigns an id to records persisted before ids existed.
func (p *Project) Normalize() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
}

// SameTitle compares project titles the way lookups do: trimmed and
// case-insensitive.
func (p *Project) SameTitle(title string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Title), strings.TrimSpace(title))
}
