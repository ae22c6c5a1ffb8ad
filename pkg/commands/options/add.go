// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/task"
	"tableflip.dev/agenda/pkg/timeutil"
)

// AddOptions captures the task creation flags. Validation of the title
// and due date happens here, at the command boundary; the stores accept
// whatever they are given.
type AddOptions struct {
	Title       string
	Description string
	DueString   string
	InString    string
	Priority    string
	Project     string
}

func AddTaskArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the task.")
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Specify the due date, example: --due="2026-02-28".`)
	cmd.Flags().StringVar(&o.InString, "in", "",
		`Specify the due date as an offset from today, example: --in=3d.`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "Low",
		"Priority: low, medium or high.")
	cmd.Flags().StringVar(&o.Project, "project", "",
		"Assign the task to the named project.")
}

// GetDue resolves the due date from --due or --in, defaulting to today.
func (o *AddOptions) GetDue(now time.Time) (task.Date, error) {
	if o.DueString != "" && o.InString != "" {
		return task.Date{}, errors.New("use --due or --in, not both")
	}
	if o.DueString != "" {
		return task.ParseDate(o.DueString)
	}
	if o.InString != "" {
		d, _, err := timeutil.ParseOffset(o.InString)
		if err != nil {
			return task.Date{}, err
		}
		now = now.Add(d)
	}
	return task.Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())}, nil
}

func (o *AddOptions) GetPriority() task.Priority {
	return task.ParsePriority(o.Priority)
}
