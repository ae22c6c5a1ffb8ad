package commands

import (
	"context"
	"errors"
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tui"
)

func addTUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "open the full-screen interface",
		Example: `
agenda tui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("tui requires a terminal")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return tui.Run(context.Background(), p)
		},
	}

	topLevel.AddCommand(cmd)
}
