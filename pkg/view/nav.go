package view

import (
	"fmt"

	"github.com/fatih/color"
)

// RenderNav rebuilds the navigation submenu fragment: the fixed view
// names followed by one entry per project. The project list is read fresh
// from the store on every rebuild, never cached.
func (v *Sync) RenderNav() {
	v.title("Views")
	for _, m := range []Mode{ModeHome, ModeToday, ModeWeek, ModeCompleted, ModeProjects} {
		marker := "  "
		if m == v.Mode {
			marker = "» "
		}
		_, _ = fmt.Fprintf(v.out(), "%s%s\n", marker, m.Title())
	}

	projects := v.Service.Projects.List()
	if len(projects) == 0 {
		v.newline()
		return
	}
	f := color.New(color.Faint)
	for _, p := range projects {
		marker := "    "
		if v.Mode.Project() != "" && p.SameTitle(v.Mode.Project()) {
			marker = "  » "
		}
		_, _ = f.Fprintf(v.out(), "%s%s\n", marker, p.Title)
	}
	v.newline()
}
