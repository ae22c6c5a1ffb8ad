// Package ui provides the two-pane text interface: a view index on the
// left, the tasks of the selected view on the right.
package ui

import (
	"context"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tracker"
	"tableflip.dev/agenda/pkg/view"
)

type UI struct {
	Persistence store.Persistence

	sync  *view.Sync
	dirty view.Mode
	index []view.Mode

	indexes    *tui.Table
	indexTitle string
	indexView  *tui.Box

	collection      *tui.Table
	collectionView  *tui.Box
	collectionTitle string
}

func (d *UI) Do(ctx context.Context) error {
	svc, err := tracker.NewService(ctx, d.Persistence)
	if err != nil {
		return err
	}
	d.sync = &view.Sync{Service: svc, Mode: view.ModeHome}

	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	cTable := tui.NewTable(1, 0)
	cTable.SetFocused(true)
	cTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, ESC or 'q' to QUIT`)

	collection := tui.NewVBox(cTable)
	collection.SetBorder(true)
	collection.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, collection)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d.indexes = iTable
	d.indexTitle = "views"
	d.indexView = index
	d.collection = cTable
	d.collectionView = collection

	d.populateIndex()

	iTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateCollection()
	})

	ui.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	ui.SetKeybinding("Right", func() {
		d.focusCollection()
	})

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.populateCollection()
	d.focusCollection()

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

func (d *UI) focusIndex() {
	d.indexes.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.collection.SetFocused(false)
	d.collectionView.SetTitle("")
}

func (d *UI) focusCollection() {
	d.indexes.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.collection.SetFocused(true)
	d.collectionView.SetTitle(d.collectionTitle)
}

// populateIndex rebuilds the navigation submenu: the fixed views first,
// then one row per project.
func (d *UI) populateIndex() {
	d.indexes.RemoveRows()
	d.indexes.Select(0)

	d.index = []view.Mode{
		view.ModeHome,
		view.ModeToday,
		view.ModeWeek,
		view.ModeCompleted,
	}
	for _, p := range d.sync.Service.Projects.List() {
		d.index = append(d.index, view.ProjectMode(p.Title))
	}

	for _, m := range d.index {
		d.indexes.AppendRow(tui.NewLabel(m.Title()))
	}
}

// populateCollection rebuilds the task pane for the selected view. The
// fragment is discarded whole on every view switch.
func (d *UI) populateCollection() {
	selected := view.ModeHome
	if d.indexes.Selected() >= 0 && d.indexes.Selected() < len(d.index) {
		selected = d.index[d.indexes.Selected()]
	}

	if d.dirty != selected {
		d.collection.RemoveRows()
		d.collectionTitle = selected.Title()
		for _, t := range d.sync.TasksFor(selected) {
			d.collection.AppendRow(tui.NewLabel(t.String()))
		}
		d.dirty = selected
	}
}
