package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/task"
)

func TestWatchReportsTaskWrites(t *testing.T) {
	p, _ := load(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.SaveTasks([]*task.Task{task.New("ping", "", task.Date{}, task.Low, "")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatalf("watch channel closed early")
		}
		if ev.Type != EventTasksChanged {
			t.Fatalf("expected a task event, got %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for a watch event")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p, _ := load(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may still arrive; drain until close.
			for range events {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for the watch channel to close")
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Type: EventTasksChanged, Key: KeyTodos}, send)
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("burst should collapse to one event, got a second: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEventThrottleStopDropsPendingFlush(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)

	// The owner closes its channel right after Stop; a flush firing past
	// that point would send on a closed channel.
	got := make(chan Event, 1)
	th.Enqueue(Event{Type: EventTasksChanged, Key: KeyTodos}, func(ev Event) { got <- ev })
	th.Stop()
	close(got)

	select {
	case ev, ok := <-got:
		if ok {
			t.Fatalf("flush fired after Stop: %+v", ev)
		}
	case <-time.After(100 * time.Millisecond):
	}

	// Enqueue after Stop stays inert.
	th.Enqueue(Event{Type: EventProjectsChanged, Key: KeyProjects}, func(ev Event) {
		t.Errorf("send after Stop: %+v", ev)
	})
	time.Sleep(50 * time.Millisecond)
}
