package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/query"
)

type PrettyPrint struct {
	ShowID bool
}

const layoutUS = "January 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Events renders the event table the list and dashboard views share.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Date"), bold.Sprint("Location"), bold.Sprint("Status"))
	} else {
		tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Date"), bold.Sprint("Location"), bold.Sprint("Status"))
	}
	for _, e := range events {
		status := e.Status.Color().Sprint(e.Status)
		if pp.ShowID {
			tbl.AddRow(fmt.Sprintf("%d", e.ID), e.Name, formatDate(e), e.Location, status)
		} else {
			tbl.AddRow(e.Name, formatDate(e), e.Location, status)
		}
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Details renders a single event in full.
func (pp *PrettyPrint) Details(e event.Event) {
	label := color.New(color.Faint)

	pp.Title(e.Name)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(label.Sprint("ID"), fmt.Sprintf("%d", e.ID))
	tbl.AddRow(label.Sprint("Date"), formatDate(e))
	tbl.AddRow(label.Sprint("Location"), e.Location)
	tbl.AddRow(label.Sprint("Status"), e.Status.Color().Sprint(e.Status))
	tbl.AddRow(label.Sprint("Created"), e.CreatedAt.String())
	if e.UpdatedAt != nil {
		tbl.AddRow(label.Sprint("Updated"), e.UpdatedAt.String())
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Stats renders the dashboard counters and the per-status legend.
func (pp *PrettyPrint) Stats(counts query.Counts, byStatus map[event.Status]int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Total"), fmt.Sprintf("%d", counts.Total))
	tbl.AddRow(bold.Sprint("Upcoming"), fmt.Sprintf("%d", counts.Upcoming))
	tbl.AddRow(bold.Sprint("Completed"), fmt.Sprintf("%d", counts.Completed))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")

	total := 0
	for _, s := range event.AllStatuses() {
		total += byStatus[s]
	}

	legend := uitable.New()
	legend.Separator = "  "
	for _, s := range event.AllStatuses() {
		count := byStatus[s]
		share := 0.0
		if total > 0 {
			share = float64(count) / float64(total) * 100
		}
		legend.AddRow(s.Color().Sprint(s), fmt.Sprintf("%d", count), fmt.Sprintf("%.1f%%", share))
	}
	legend.RightAlign(1)

	_, _ = fmt.Fprintln(color.Output, legend)
	fmt.Println("")
}

// Degraded prints the warning shown when stored data could not be parsed
// and the views fell back to an empty collection.
func (pp *PrettyPrint) Degraded() {
	w := color.New(color.FgYellow, color.Italic)
	_, _ = w.Println("warning: stored events could not be read; showing an empty collection")
}

// formatDate renders the stored date in the long form the views use, falling
// back to the raw string when it does not parse.
func formatDate(e event.Event) string {
	when, ok := e.When()
	if !ok {
		return e.Date
	}
	if e.HasTime() {
		return when.Format(layoutUS) + " " + when.Format("15:04")
	}
	return when.Format(layoutUS)
}

// truncate shortens a name for narrow calendar cells.
func truncate(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return strings.TrimSpace(name[:max]) + "..."
}
