// Package project provides the runner logic for project management.
package project

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

// Add creates a named project.
type Add struct {
	Title string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add project, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	_, change, err := svc.AddProject(ctx, n.Title)
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: view.ModeProjects}
	v.Apply(change)
	return nil
}

// Delete removes a project by title. Tasks referencing it survive with
// their project reference cleared.
type Delete struct {
	Title string

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete project, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	change, err := svc.DeleteProjectByTitle(ctx, n.Title)
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: view.ModeProjects}
	v.Apply(change)
	return nil
}

// Move reassigns a task to the project with the given title; an empty
// title clears the assignment.
type Move struct {
	Ref     string
	Project string

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	t, err := svc.FindTask(n.Ref)
	if err != nil {
		return err
	}

	change, err := svc.ReassignTask(ctx, t.ID, n.Project)
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: view.ModeProjects}
	v.Apply(change)
	return nil
}
