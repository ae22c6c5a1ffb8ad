// Package view keeps the rendered fragments in sync with store state. The
// three fragments mirror the page regions of the tracker: the task table,
// the navigation submenu, and the project grid. Fragments are always
// rebuilt whole; there is no partial patching.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/task"
	"tableflip.dev/agenda/pkg/timewindow"
	"tableflip.dev/agenda/pkg/tracker"
)

// Mode names a view of the task collection.
type Mode string

const (
	ModeHome      Mode = "home"
	ModeToday     Mode = "today"
	ModeWeek      Mode = "this week"
	ModeCompleted Mode = "completed"
	ModeProjects  Mode = "projects"

	projectPrefix = "project:"
)

// ProjectMode builds the mode showing a single project's tasks.
func ProjectMode(title string) Mode {
	return Mode(projectPrefix + title)
}

// ParseMode maps user input to a view mode. Unrecognized input falls back
// to home, matching the tracker's default landing view.
func ParseMode(v string) Mode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "today":
		return ModeToday
	case "week", "this week", "thisweek":
		return ModeWeek
	case "completed", "done":
		return ModeCompleted
	case "projects":
		return ModeProjects
	default:
		return ModeHome
	}
}

// Project returns the project title for a project:<name> mode, or "".
func (m Mode) Project() string {
	if strings.HasPrefix(string(m), projectPrefix) {
		return string(m[len(projectPrefix):])
	}
	return ""
}

func (m Mode) Title() string {
	if p := m.Project(); p != "" {
		return p
	}
	switch m {
	case ModeToday:
		return "Today"
	case ModeWeek:
		return "This Week"
	case ModeCompleted:
		return "Completed"
	case ModeProjects:
		return "Projects"
	default:
		return "Home"
	}
}

// Sync renders view fragments from current store state and decides, per
// change, which fragments are stale. Mutations never patch the output;
// they trigger whole-fragment rebuilds.
type Sync struct {
	Service *tracker.Service

	// Mode is the view whose main fragment is currently displayed.
	Mode Mode

	// Out receives rendered fragments; defaults to color.Output.
	Out io.Writer

	// Now supplies the clock for time-window views; defaults to time.Now.
	Now func() time.Time
}

func (v *Sync) out() io.Writer {
	if v.Out != nil {
		return v.Out
	}
	return color.Output
}

func (v *Sync) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// TasksFor computes the task subsequence a mode displays, ordered
// ascending by due date.
func (v *Sync) TasksFor(mode Mode) []*task.Task {
	all := v.Service.Todos.List()
	var shown []*task.Task
	switch {
	case mode == ModeToday:
		start, end := timewindow.Today(v.now())
		shown = timewindow.FilterByRange(all, start, end)
	case mode == ModeWeek:
		start, end := timewindow.ThisWeek(v.now())
		shown = timewindow.FilterByRange(all, start, end)
	case mode == ModeCompleted:
		shown = timewindow.FilterCompleted(all)
	case mode.Project() != "":
		p := v.Service.Projects.FindByTitle(mode.Project())
		if p == nil {
			shown = []*task.Task{}
		} else {
			shown = timewindow.FilterByProject(all, p.ID)
		}
	default:
		shown = append([]*task.Task{}, all...)
	}
	timewindow.SortByDueDate(shown)
	return shown
}

// Show switches the current view mode, discarding and rebuilding the main
// content fragment.
func (v *Sync) Show(mode Mode) {
	v.Mode = mode
	if mode == ModeProjects {
		v.RenderGrid()
		return
	}
	v.RenderTable(mode)
}

// Apply rebuilds every fragment made stale by the change. Task mutations
// touch the table and the grid (the grid denormalizes member tasks);
// project mutations additionally touch the navigation submenu. The
// dispatcher errs toward rebuilding; skipping a stale fragment is the bug
// this type exists to prevent.
func (v *Sync) Apply(c tracker.Change) {
	if c.Empty() {
		return
	}
	switch c.Kind {
	case tracker.KindProject:
		v.RenderNav()
		v.RenderGrid()
		if v.Mode != ModeProjects {
			v.RenderTable(v.Mode)
		}
	default:
		if v.Mode != ModeProjects {
			v.RenderTable(v.Mode)
		}
		v.RenderGrid()
	}
}

func (v *Sync) title(text string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(v.out(), text)
}

func (v *Sync) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(v.out(), " none\n\n")
}

func (v *Sync) newline() {
	_, _ = fmt.Fprintln(v.out(), "")
}
