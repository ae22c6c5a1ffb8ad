package view

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/glyph"
	"tableflip.dev/agenda/pkg/timewindow"
)

// RenderGrid rebuilds the project grid fragment: one cell per project
// listing its member tasks as "dueDate: title", completed entries struck
// through. Membership comes from the tasks' project references, never
// from a list stored on the project.
func (v *Sync) RenderGrid() {
	v.title("Projects")
	projects := v.Service.Projects.List()
	if len(projects) == 0 {
		v.none()
		return
	}

	all := v.Service.Todos.List()
	h := color.New(color.Bold)

	for _, p := range projects {
		_, _ = h.Fprintln(v.out(), p.Title)

		members := timewindow.FilterByProject(all, p.ID)
		timewindow.SortByDueDate(members)
		if len(members) == 0 {
			v.none()
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, t := range members {
			line := fmt.Sprintf("%s:  %s", t.DueDate.String(), t.Title)
			if t.Completed {
				line = glyph.Strike(line)
			}
			tbl.AddRow(" ", line)
		}
		_, _ = fmt.Fprintln(v.out(), tbl)
		v.newline()
	}
}
