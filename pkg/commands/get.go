package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/commands/options"
	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List events",
		Example: `
eventdash get
eventdash get --upcoming
eventdash get --status Cancelled
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := event.ParseStatus(fo.Status)
			if err != nil {
				return output.HandleError(err)
			}
			if fo.Status == "" {
				status = ""
			}
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Status:      status,
				Upcoming:    fo.Upcoming,
				Completed:   fo.Completed,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
