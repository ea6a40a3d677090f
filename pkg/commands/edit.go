package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/commands/options"
	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"update"},
		Short:   "Update an event",
		Example: `
eventdash edit 3 --status Postponed
eventdash edit 3 --name "Team Dinner" --date 2026-02-02
eventdash edit
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// No id consumes a pending edit request from the dashboard.
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
			status, err := event.ParseStatus(eo.Status)
			if err != nil {
				return output.HandleError(err)
			}
			if eo.Status == "" {
				status = ""
			}
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          io.ID,
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

	options.AddNameArg(cmd, eo)
	options.AddEventArgs(cmd, eo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
