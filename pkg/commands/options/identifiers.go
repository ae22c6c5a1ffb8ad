package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ID string
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of a task.")
}

// MatchOptions carries the legacy identity tuple for addressing tasks
// created before ids existed.
type MatchOptions struct {
	Description string
	Due         string
}

func AddMatchArgs(cmd *cobra.Command, o *MatchOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Match on the task description.")
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Match on the due date.")
}

// ProjectOptions names a project for assignment commands.
type ProjectOptions struct {
	Project string
}

func AddProjectArgs(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVar(&o.Project, "project", "",
		"Specify the project by title; empty clears the assignment.")
}
