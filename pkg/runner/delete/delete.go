// Package delete provides the runner logic for removing tasks.
package delete

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

// Delete removes a task. With an ID set it removes exactly that task; with
// the identity tuple set it removes every task matching title, description
// and due date.
type Delete struct {
	ID          string
	Title       string
	Description string
	Due         string

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	var change tracker.Change
	if n.ID != "" {
		change, err = svc.DeleteTask(ctx, n.ID)
	} else {
		change, err = svc.DeleteTaskMatching(ctx, n.Title, n.Description, n.Due)
	}
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: view.ModeHome}
	v.Apply(change)
	return nil
}
