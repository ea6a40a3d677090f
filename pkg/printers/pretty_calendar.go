package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/eventdash/pkg/event"
	"tableflip.dev/eventdash/pkg/query"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar renders the month grid followed by the scheduled events, day by
// day in ascending date/time order.
func (pp *PrettyPrint) Calendar(on time.Time, events []event.Event) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, events)
	pp.PrintMonthAgenda(then, events)
}

// PrintMonth renders the compact grid; days with events are highlighted.
func (pp *PrettyPrint) PrintMonth(then time.Time, events []event.Event) {
	days := DaysIn(then)

	count := make([]int, days)
	for _, e := range query.ByMonth(events, then.Year(), then.Month()) {
		when, ok := e.When()
		if !ok {
			continue
		}
		count[when.Day()-1]++
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)

	now := time.Now()
	sameMonth := now.Year() == then.Year() && now.Month() == then.Month()

	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if sameMonth && now.Day() == i+1 {
			printer = today
		}
		printer.Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// PrintMonthAgenda lists each day's events under the grid.
func (pp *PrettyPrint) PrintMonthAgenda(then time.Time, events []event.Event) {
	p := color.New()
	day := color.New(color.Bold)

	for i := 1; i <= DaysIn(then); i++ {
		onDay := query.ByDay(events, then.Year(), then.Month(), i)
		if len(onDay) == 0 {
			continue
		}
		_, _ = day.Printf("%s %d\n", then.Month(), i)
		for _, e := range onDay {
			line := truncate(e.Name, 32)
			if e.HasTime() {
				if when, ok := e.When(); ok {
					line = when.Format("15:04") + " " + line
				}
			}
			_, _ = p.Printf("  %s %s\n", e.Status.Color().Sprint("•"), line)
		}
	}
	fmt.Println("")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
