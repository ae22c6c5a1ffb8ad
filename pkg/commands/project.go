package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/project"
	"tableflip.dev/agenda/pkg/store"
)

func addProject(topLevel *cobra.Command) {
	title := ""

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Add a project",
		Example: `
agenda add project Groceries
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return errors.New("requires a non-empty title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := project.Add{
				Title:       title,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
