// Package tui implements the full-screen interface. The left pane is the
// navigation submenu (views, then projects), the right pane is the task
// table or the project grid. Fragments are rebuilt from store state after
// every mutation and whenever the backing documents change on disk.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/agenda/pkg/project"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/task"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

type focusArea int

const (
	focusNav focusArea = iota
	focusContent
	focusInput
)

type storeEventMsg store.Event

type Model struct {
	svc    *tracker.Service
	sync   *view.Sync
	events <-chan store.Event

	mode  view.Mode
	modes []view.Mode

	tasks    []*task.Task
	projects []*project.Project

	focus      focusArea
	navCursor  int
	rowCursor  int
	width      int
	height     int
	status     string
	input      textinput.Model
	help       help.Model
	keys       keyMap
	showAllKey bool
}

// New builds the model over an already-loaded service.
func New(svc *tracker.Service, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		svc:    svc,
		sync:   &view.Sync{Service: svc, Mode: view.ModeHome},
		events: events,
		mode:   view.ModeHome,
		focus:  focusContent,
		status: "Ready",
		input:  ti,
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent bridges the store watcher into the message loop.
func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return storeEventMsg(ev)
	}
}

// refresh rebuilds every fragment's backing data from current store
// state: the nav entries, the visible task subsequence, and the project
// list. The whole fragment is recomputed; nothing is patched in place.
func (m *Model) refresh() {
	m.sync.Mode = m.mode

	m.modes = []view.Mode{
		view.ModeHome,
		view.ModeToday,
		view.ModeWeek,
		view.ModeCompleted,
		view.ModeProjects,
	}
	m.projects = m.svc.Projects.List()
	for _, p := range m.projects {
		m.modes = append(m.modes, view.ProjectMode(p.Title))
	}

	m.tasks = m.sync.TasksFor(m.mode)

	if m.navCursor >= len(m.modes) {
		m.navCursor = len(m.modes) - 1
	}
	if max := m.rowCount(); m.rowCursor >= max {
		m.rowCursor = max - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}
}

func (m *Model) rowCount() int {
	if m.mode == view.ModeProjects {
		return len(m.projects)
	}
	return len(m.tasks)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case storeEventMsg:
		// Another process rewrote a document; reload and rebuild.
		ctx := context.Background()
		m.svc.Todos.Load(ctx)
		m.svc.Projects.Load(ctx)
		m.refresh()
		m.status = "Reloaded from storage"
		return m, m.waitForEvent()
	case tea.KeyMsg:
		if m.focus == focusInput {
			return m.handleInputKeys(msg)
		}
		return m.handleNormalKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.focus = focusContent
		m.input.Blur()
		m.input.Reset()
		m.status = "Add cancelled"
		return m, nil
	case "enter":
		title := m.input.Value()
		m.focus = focusContent
		m.input.Blur()
		m.input.Reset()
		if title == "" {
			m.status = "Title required"
			return m, nil
		}
		// Truncate to the calendar day so the in-memory value matches what
		// a reload of the persisted form would produce.
		now := time.Now()
		due := task.Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())}
		projectTitle := m.mode.Project()
		_, change, err := m.svc.AddTask(context.Background(), title, "", due, task.Low, projectTitle)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.applyChange(change, fmt.Sprintf("Added %q", title))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.showAllKey = !m.showAllKey
		m.help.ShowAll = m.showAllKey
		return m, nil
	case key.Matches(msg, k.Nav):
		m.focus = focusNav
		return m, nil
	case key.Matches(msg, k.Tasks):
		m.focus = focusContent
		return m, nil
	case key.Matches(msg, k.Up):
		if m.focus == focusNav {
			if m.navCursor > 0 {
				m.navCursor--
			}
		} else if m.rowCursor > 0 {
			m.rowCursor--
		}
		return m, nil
	case key.Matches(msg, k.Down):
		if m.focus == focusNav {
			if m.navCursor < len(m.modes)-1 {
				m.navCursor++
			}
		} else if m.rowCursor < m.rowCount()-1 {
			m.rowCursor++
		}
		return m, nil
	case key.Matches(msg, k.Select):
		return m.handleSelect()
	case key.Matches(msg, k.Add):
		m.focus = focusInput
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, k.Complete):
		return m.handleComplete()
	case key.Matches(msg, k.Delete):
		return m.handleDelete()
	}
	return m, nil
}

func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	if m.focus == focusNav {
		// Switching views discards and rebuilds the content fragment.
		m.mode = m.modes[m.navCursor]
		m.rowCursor = 0
		m.focus = focusContent
		m.refresh()
		m.status = m.mode.Title()
		return m, nil
	}
	if m.mode == view.ModeProjects && m.rowCursor < len(m.projects) {
		m.mode = view.ProjectMode(m.projects[m.rowCursor].Title)
		m.rowCursor = 0
		m.refresh()
		m.status = m.mode.Title()
	}
	return m, nil
}

func (m Model) handleComplete() (tea.Model, tea.Cmd) {
	if m.mode == view.ModeProjects || m.rowCursor >= len(m.tasks) {
		return m, nil
	}
	t := m.tasks[m.rowCursor]
	ctx := context.Background()
	var (
		change tracker.Change
		err    error
	)
	if t.Completed {
		change, err = m.svc.ReopenTask(ctx, t.ID)
	} else {
		change, err = m.svc.CompleteTask(ctx, t.ID)
	}
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.applyChange(change, fmt.Sprintf("Toggled %q", t.Title))
	return m, nil
}

func (m Model) handleDelete() (tea.Model, tea.Cmd) {
	ctx := context.Background()
	if m.mode == view.ModeProjects {
		if m.rowCursor >= len(m.projects) {
			return m, nil
		}
		p := m.projects[m.rowCursor]
		change, err := m.svc.DeleteProject(ctx, p.ID)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		status := fmt.Sprintf("Deleted project %q", p.Title)
		if change.Orphaned > 0 {
			status = fmt.Sprintf("Deleted project %q, unassigned %d task(s)", p.Title, change.Orphaned)
		}
		m.applyChange(change, status)
		return m, nil
	}
	if m.rowCursor >= len(m.tasks) {
		return m, nil
	}
	t := m.tasks[m.rowCursor]
	change, err := m.svc.DeleteTask(ctx, t.ID)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.applyChange(change, fmt.Sprintf("Deleted %q", t.Title))
	return m, nil
}

// applyChange rebuilds the fragments a mutation made stale. All three
// panes read straight from store state at render, so one refresh covers
// the dispatch table.
func (m *Model) applyChange(c tracker.Change, status string) {
	if c.Empty() {
		return
	}
	if c.Kind == tracker.KindProject && m.mode.Project() != "" {
		// The project behind the open view may be gone; fall back home.
		if m.svc.Projects.FindByTitle(m.mode.Project()) == nil {
			m.mode = view.ModeHome
		}
	}
	m.refresh()
	m.status = status
}
