// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/task"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

type Add struct {
	Title       string
	Description string
	Due         task.Date
	Priority    task.Priority
	Project     string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	_, change, err := svc.AddTask(ctx, n.Title, n.Description, n.Due, n.Priority, n.Project)
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: view.ModeHome}
	v.Apply(change)
	return nil
}
