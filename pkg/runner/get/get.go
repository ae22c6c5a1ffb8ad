// Package get provides the runner logic for rendering the view modes.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

type Get struct {
	Mode    view.Mode
	ShowNav bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc, err := tracker.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	v := view.Sync{Service: svc, Mode: n.Mode}
	fmt.Println("")
	if n.ShowNav {
		v.RenderNav()
	}
	v.Show(n.Mode)
	return nil
}
