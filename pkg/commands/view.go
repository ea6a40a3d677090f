package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/commands/options"
	"tableflip.dev/eventdash/pkg/runner/view"
)

func addView(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "view [id]",
		Aliases: []string{"details", "show"},
		Short:   "Show one event in full",
		Example: `
eventdash view 2
eventdash view
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// No id falls back to the remembered details-view target.
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}
			io.ID = id
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := view.View{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
