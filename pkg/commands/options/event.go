// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// EventOptions captures the event fields commands accept as flags.
type EventOptions struct {
	Name     string
	Date     string
	Location string
	Status   string
}

// AddEventArgs wires the event field flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Event date, YYYY-MM-DD or YYYY-MM-DDTHH:MM.")
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Event location.")
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Event status: Upcoming, Completed, Cancelled or Postponed.")
}

// AddNameArg wires the name flag for commands that do not take it as a
// positional argument.
func AddNameArg(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Event name.")
}
