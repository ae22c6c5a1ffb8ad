// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

// Complete marks a task completed, or reopens it when Reopen is set. Ref
// accepts a task id or an unambiguous title.
type Complete struct {
	Ref    string
	Reopen bool

	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	t, err := svc.FindTask(n.Ref)
	if err != nil {
		return err
	}

	var change tracker.Change
	if n.Reopen {
		change, err = svc.ReopenTask(ctx, t.ID)
	} else {
		change, err = svc.CompleteTask(ctx, t.ID)
	}
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: view.ModeHome}
	v.Apply(change)
	return nil
}
