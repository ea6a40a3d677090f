package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/commands/options"
	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an event",
		Example: `
eventdash add "Family Dinner" --date 2026-02-01 --location "UiTM Hotel"
eventdash add "Gym Session" -d 2026-02-25T18:30 -l "Training Hall" -s Upcoming
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event name")
			}
			eo.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := event.ParseStatus(eo.Status)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := add.Add{
				Name:        eo.Name,
				Date:        eo.Date,
				Location:    eo.Location,
				Status:      status,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
