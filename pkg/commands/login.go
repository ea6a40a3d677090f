package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	email := ""
	password := ""

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the session flag (placeholder gate, no security value)",
		Example: `
eventdash login --email admin@example.com --password admin123
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("requires --email and --password")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := login.Login{
				Email:       email,
				Password:    password,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email.")
	cmd.Flags().StringVar(&password, "password", "", "Account password.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the session flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := login.Logout{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(logoutCmd, output)
	topLevel.AddCommand(logoutCmd)
}
