package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/eventdash/pkg/commands/options"
	"tableflip.dev/eventdash/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month calendar",
		Example: `
eventdash calendar
eventdash calendar --year 2026 --month 1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if mo.Month < 0 || mo.Month > 12 {
				return fmt.Errorf("invalid month %d", mo.Month)
			}
			if (mo.Year == 0) != (mo.Month == 0) {
				return fmt.Errorf("year and month go together")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence(cmd.Context())
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				Year:        mo.Year,
				Month:       time.Month(mo.Month),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
