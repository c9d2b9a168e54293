package migrate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderSummary prints the per-column transfer summary as a console table.
func RenderSummary(w io.Writer, summaries []TagSummary) error {
	fmt.Fprintln(w, "Migrated Curator Tags")

	table := tablewriter.NewTable(w)
	table.Header("Name", "#migrated", "#TRUE")
	for _, s := range summaries {
		if err := table.Append(s.Column, strconv.Itoa(s.Migrated), strconv.Itoa(s.True)); err != nil {
			return err
		}
	}
	return table.Render()
}

// RenderDiff prints a diff report as a console table. The "a"/"b" markers
// name which input file carries the set tag.
func RenderDiff(w io.Writer, report *DiffReport) error {
	fmt.Fprintln(w, "a vs b")

	table := tablewriter.NewTable(w)
	headers := make([]any, len(report.Columns))
	for i, col := range report.Columns {
		headers[i] = col
	}
	table.Header(headers...)

	for _, row := range report.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}
