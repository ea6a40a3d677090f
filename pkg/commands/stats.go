package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	show := ""

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show the event dashboard",
		Example: `
eventdash stats
eventdash stats --show upcoming
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := stats.Stats{
				Show:        show,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&show, "show", "",
		"Also list one category: all, upcoming, completed, cancelled or postponed.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
