package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/complete"
	"tableflip.dev/agenda/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	ref := ""

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done"},
		Short:   "Mark a task completed",
		Example: `
agenda complete <task id or title>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				Ref:         ref,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addReopen(topLevel *cobra.Command) {
	ref := ""

	cmd := &cobra.Command{
		Use:     "reopen",
		Aliases: []string{"uncomplete", "undone"},
		Short:   "Clear the completed flag on a task",
		Example: `
agenda reopen <task id or title>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				Ref:         ref,
				Reopen:      true,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
