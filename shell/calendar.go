package shell

import (
	"fmt"
	"strings"
	"time"
)

// Width of the week header "Mo Tu We Th Fr Sa Su"; the title centers over it.
const calWidth = 20

// formatMonth renders a Monday-first textual month grid: a centered
// "Month Year" title, a weekday header, then one row per week with
// width-2 right-aligned day cells. Every line is right-trimmed and the
// result ends with a newline.
func formatMonth(year int, month time.Month) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", month, year)
	if pad := (calWidth - len(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString("Mo Tu We Th Fr Sa Su\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // column of day 1, Monday-first
	// Day 0 of the next month is the last day of this one; handles leap years.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]string, 7)
	for day := 1 - offset; day <= days; day += 7 {
		for i := range cells {
			d := day + i
			if d < 1 || d > days {
				cells[i] = "  "
			} else {
				cells[i] = fmt.Sprintf("%2d", d)
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
