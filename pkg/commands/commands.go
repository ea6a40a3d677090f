package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "eventdash",
		Short: base.Wrap80("Event management dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addView(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addWatch(topLevel)
	addLogin(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

// loadPersistence opens the store and seeds the sample collection when none
// exists, the same way every page load did.
func loadPersistence(ctx context.Context) (store.Persistence, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	if err := p.Initialize(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
