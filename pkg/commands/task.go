package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
)

func addTask(topLevel *cobra.Command) {
	no := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
agenda add task buy milk --due 2026-09-01 --priority high --project Groceries
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			no.Title = strings.Join(args, " ")
			if strings.TrimSpace(no.Title) == "" {
				return errors.New("requires a non-empty title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			due, err := no.GetDue(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Title:       no.Title,
				Description: no.Description,
				Due:         due,
				Priority:    no.GetPriority(),
				Project:     no.Project,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, no)

	flagName := "project"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return projectCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
