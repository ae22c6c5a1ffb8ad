package view

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/glyph"
)

// RenderTable rebuilds the task table fragment for the given mode:
// status mark, title, due date, priority dots, project column.
func (v *Sync) RenderTable(mode Mode) {
	shown := v.TasksFor(mode)

	v.title(mode.Title())
	if len(shown) == 0 {
		v.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", glyph.Bold("Title"), glyph.Bold("Due Date"), glyph.Bold("Priority"), glyph.Bold("Project"))

	for _, t := range shown {
		mark, title, due, dots := t.Row()
		if t.Completed {
			title = glyph.Strike(title)
		}
		tbl.AddRow(mark, title, due, dots, v.Service.ProjectTitle(t))
	}
	_, _ = fmt.Fprintln(v.out(), tbl)
	v.newline()
}

// RenderTask prints a single task with its description, the expanded row
// form of the table.
func (v *Sync) RenderTask(id string) {
	t := v.Service.Todos.Get(id)
	if t == nil {
		v.none()
		return
	}
	_, _ = fmt.Fprintln(v.out(), t.String())
	if t.Description != "" {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(v.out(), "  %s\n", t.Description)
	}
}
