package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each event.")
}

// FilterOptions selects one event category for listing commands.
type FilterOptions struct {
	Status    string
	Upcoming  bool
	Completed bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Only events with this status.")
	cmd.Flags().BoolVar(&o.Upcoming, "upcoming", false,
		"Only events dated today or later.")
	cmd.Flags().BoolVar(&o.Completed, "completed", false,
		"Only past-dated or completed events.")
}

// MonthOptions selects a calendar month.
type MonthOptions struct {
	Year  int
	Month int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Calendar year; defaults to the current one.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", 0,
		"Calendar month 1-12; defaults to the current one.")
}
