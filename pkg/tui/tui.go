package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tracker"
)

// Run loads the tracker and starts the full-screen program. The store
// watcher feeds external document changes into the UI for as long as the
// program runs.
func Run(ctx context.Context, p store.Persistence) error {
	svc, err := tracker.NewService(ctx, p)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := p.Watch(watchCtx)
	if err != nil {
		// The watcher is a convenience; the UI still works without it.
		fmt.Println("watch unavailable:", err)
		events = nil
	}

	m := New(svc, events)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
