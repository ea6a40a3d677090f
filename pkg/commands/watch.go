package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/runner/watch"
	"tableflip.dev/eventdash/pkg/timeutil"
)

func addWatch(topLevel *cobra.Command) {
	var window string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the collection and report every change",
		Example: `
eventdash watch
eventdash watch --for 2h
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if window != "" {
				d, label, err := timeutil.ParseWindow(window)
				if err != nil {
					return fmt.Errorf("invalid --for window: %w", err)
				}
				fmt.Printf("watching for %s\n", label)
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			s := watch.Watch{
				Persistence: p,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&window, "for", "", "Stop watching after a window such as 30m, 2h or 1d.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
