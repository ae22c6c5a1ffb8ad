package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	del "tableflip.dev/agenda/pkg/runner/delete"
	"tableflip.dev/agenda/pkg/runner/project"
	"tableflip.dev/agenda/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete something",
		Example: `
agenda delete task buy milk --due 2026-09-01
agenda delete project Groceries
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeleteTask(cmd)
	addDeleteProject(cmd)

	topLevel.AddCommand(cmd)
}

func addDeleteTask(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MatchOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Delete tasks",
		Long: "Delete the task with the given --id, or every task matching the " +
			"title plus the --description and --due values. Tasks sharing all " +
			"three are treated as the same task and removed together.",
		Example: `
agenda delete task --id <task id>
agenda delete task buy milk --due 2026-09-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if io.ID == "" && strings.TrimSpace(title) == "" {
				return errors.New("requires an --id or a title")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := del.Delete{
				ID:          io.ID,
				Title:       title,
				Description: mo.Description,
				Due:         mo.Due,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddMatchArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

func addDeleteProject(topLevel *cobra.Command) {
	title := ""

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Delete a project, keeping its tasks",
		Long: "Delete the named project. Tasks assigned to it are kept and " +
			"their project reference is cleared.",
		Example: `
agenda delete project Groceries
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a project title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := project.Delete{
				Title:       title,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
