package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/agenda/pkg/view"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "97", Dark: "141"}).
			Strikethrough(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	focusedBorderColor = lipgloss.AdaptiveColor{Light: "25", Dark: "212"}
	dimBorderColor     = lipgloss.AdaptiveColor{Light: "243", Dark: "241"}
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	navWidth := 24
	contentWidth := m.width - navWidth - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	nav := m.renderNav()
	content := m.renderContent(contentWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		pane(navWidth, "Views", m.focus == focusNav, nav),
		pane(contentWidth, m.mode.Title(), m.focus != focusNav, content),
	)

	lines := []string{body}
	if m.focus == focusInput {
		lines = append(lines, "  add: "+m.input.View())
	}
	lines = append(lines, statusStyle.Render("  "+m.status))
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// renderNav draws the navigation submenu fragment: fixed views, then
// projects, with the cursor and the active view marked.
func (m Model) renderNav() string {
	var b strings.Builder
	for i, mode := range m.modes {
		label := mode.Title()
		if mode.Project() != "" {
			label = "  " + label
		}
		line := "  " + label
		if m.focus == focusNav && i == m.navCursor {
			line = selectedStyle.Render("> " + label)
		} else if mode == m.mode {
			line = normalStyle.Render("» " + label)
		} else {
			line = faintStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderContent(width int) string {
	if m.mode == view.ModeProjects {
		return m.renderGrid(width)
	}
	return m.renderTable(width)
}

// renderTable draws the task table fragment for the current mode.
func (m Model) renderTable(width int) string {
	if len(m.tasks) == 0 {
		return faintStyle.Render("  none")
	}
	var b strings.Builder
	for i, t := range m.tasks {
		mark, title, due, dots := t.Row()
		proj := m.svc.ProjectTitle(t)
		line := fmt.Sprintf("%s %-10s  %-6s %s", mark, due, dots, title)
		if proj != "" {
			line += faintStyle.Render("  (" + proj + ")")
		}
		style := normalStyle
		if t.Completed {
			style = completedStyle
		}
		if m.focus == focusContent && i == m.rowCursor {
			style = selectedStyle
		}
		b.WriteString(style.MaxWidth(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderGrid draws the project grid fragment: each project with its
// member tasks listed underneath.
func (m Model) renderGrid(width int) string {
	if len(m.projects) == 0 {
		return faintStyle.Render("  none")
	}
	var b strings.Builder
	for i, p := range m.projects {
		style := normalStyle
		if m.focus == focusContent && i == m.rowCursor {
			style = selectedStyle
		}
		b.WriteString(style.Render(p.Title))
		b.WriteString("\n")
		members := (&view.Sync{Service: m.svc}).TasksFor(view.ProjectMode(p.Title))
		if len(members) == 0 {
			b.WriteString(faintStyle.Render("   none"))
			b.WriteString("\n")
		}
		for _, t := range members {
			line := fmt.Sprintf("   %s:  %s", t.DueDate.String(), t.Title)
			if t.Completed {
				b.WriteString(completedStyle.MaxWidth(width).Render(line))
			} else {
				b.WriteString(faintStyle.MaxWidth(width).Render(line))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func pane(width int, title string, focused bool, content string) string {
	borderColor := dimBorderColor
	if focused {
		borderColor = focusedBorderColor
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Foreground(borderColor)
	if focused {
		titleStyle = titleStyle.Bold(true)
	}
	return style.Render(titleStyle.Render(title) + "\n" + content)
}
