package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/get"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/view"
)

func addGet(topLevel *cobra.Command) {
	showNav := false

	cmd := &cobra.Command{
		Use:       "get [view]",
		Short:     "Render a view of the task list",
		ValidArgs: []string{"home", "today", "week", "completed", "projects"},
		Example: `
agenda get
agenda get today
agenda get week
agenda get completed
agenda get projects
agenda get project Groceries
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			mode := view.ModeHome
			if len(args) > 0 {
				if strings.EqualFold(args[0], "project") && len(args) > 1 {
					mode = view.ProjectMode(strings.Join(args[1:], " "))
				} else {
					mode = view.ParseMode(strings.Join(args, " "))
				}
			}

			s := get.Get{
				Mode:        mode,
				ShowNav:     showNav,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showNav, "nav", false,
		"Also render the navigation menu.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func projectCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	names := make([]string, 0)
	for _, pr := range p.Projects(context.Background()) {
		if toComplete == "" || strings.HasPrefix(pr.Title, toComplete) {
			names = append(names, pr.Title)
		}
	}
	return names
}
