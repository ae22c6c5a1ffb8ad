package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/project"
	"tableflip.dev/agenda/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	ref := ""

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Assign a task to a project",
		Example: `
agenda move <task id or title> --project Groceries
agenda move <task id or title> --project ""
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := project.Move{
				Ref:         ref,
				Project:     po.Project,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProjectArgs(cmd, po)

	flagName := "project"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return projectCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
