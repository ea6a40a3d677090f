package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	enable := false
	disable := false

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or set the dark-mode preference",
		Example: `
eventdash theme
eventdash theme --dark
eventdash theme --light
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return errors.New("choose one of --dark or --light")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := theme.Theme{
				Enable:      enable,
				Disable:     disable,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&enable, "dark", false, "Enable dark mode.")
	cmd.Flags().BoolVar(&disable, "light", false, "Disable dark mode.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
