package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sojourn/pkg/trip"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) DayTitle(index int, date string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Printf("Day %d · %s", index, date)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Day prints one day's items as an aligned table.
func (pp *PrettyPrint) Day(items ...*trip.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range items {
		row := []interface{}{clockCell(it), it.Name, kindCell(it)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(shortID(it.ID))}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Grid prints a flat auxiliary list.
func (pp *PrettyPrint) Grid(rows [][]string) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		cells := make([]interface{}, len(r))
		for i, c := range r {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func clockCell(it *trip.Item) string {
	switch {
	case it.Start.IsZero():
		return "--:--"
	case it.End.IsZero():
		return it.Start.String()
	default:
		return it.Start.String() + "–" + it.End.String()
	}
}

func kindCell(it *trip.Item) string {
	f := color.New(color.Faint)
	if it.Kind == trip.KindTransport {
		route := strings.TrimSpace(it.Origin + " → " + it.Destination)
		if route == "→" {
			route = string(it.Mode)
		}
		return f.Sprint(route)
	}
	if it.Details.Rating > 0 {
		return f.Sprint(strings.Repeat("★", it.Details.Rating))
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
