package migrate

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xchem/metagrate/pkg/types"
)

// DiffOptions controls which columns a diff compares beyond curator tags.
type DiffOptions struct {
	Longcode bool // include the Long code column
	Pose     bool // include the Pose column
}

// DiffReport is a rendered-ready comparison: one row per observation
// present in both tables, columns in first-encounter order.
type DiffReport struct {
	Columns []string
	Rows    [][]string
}

// diffRow holds one observation's cells keyed by report column.
type diffRow struct {
	code  string
	cells map[string]string
}

// Diff compares curator tags (and optionally identity columns) for the
// observations present in both tables. Rows of b are matched against a;
// unmatched rows are skipped silently. Curator tags appear only where
// exactly one side is set, marked "a" or "b"; identity columns show both
// values side by side where they disagree.
func Diff(a, b *types.Table, opts DiffOptions, log zerolog.Logger) (*DiffReport, error) {
	matcher := NewMatcher(log, SmilesWarn, false)

	var columns []string
	seen := make(map[string]bool)
	addColumn := func(name string) {
		if !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}
	addColumn(types.ColShortCode)
	if opts.Longcode {
		addColumn(types.ColLongCode)
	}
	if opts.Pose {
		addColumn(types.ColPose)
	}

	var rows []diffRow
	for i := 0; i < b.Len(); i++ {
		rowB := b.Row(i)
		rowA, ok, err := matcher.Match(rowB, a)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		cells := map[string]string{
			types.ColShortCode: sideBySide(rowA.Get(types.ColShortCode), rowB.Get(types.ColShortCode)),
		}
		if opts.Longcode {
			cells[types.ColLongCode] = sideBySide(rowA.Get(types.ColLongCode), rowB.Get(types.ColLongCode))
		}
		if opts.Pose {
			cells[types.ColPose] = sideBySide(rowA.Get(types.ColPose), rowB.Get(types.ColPose))
		}

		for _, tag := range tagUnion(rowA, rowB) {
			if strings.HasPrefix(tag, "[Other] upload_") {
				continue
			}
			va := types.Truthy(rowA.Get(tag))
			vb := types.Truthy(rowB.Get(tag))
			if va == vb {
				// Agreement, set or unset, is not worth a column.
				continue
			}

			name := strings.TrimPrefix(tag, "[Other] ")
			addColumn(name)
			if va {
				cells[name] = "a"
			} else {
				cells[name] = "b"
			}
		}

		rows = append(rows, diffRow{code: rowA.GetString(types.ColShortCode), cells: cells})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].code < rows[j].code })

	report := &DiffReport{Columns: columns}
	for _, row := range rows {
		record := make([]string, len(columns))
		for j, col := range columns {
			record[j] = row.cells[col]
		}
		report.Rows = append(report.Rows, record)
	}
	return report, nil
}

// sideBySide renders a pair of cells: the shared value when they agree,
// "x vs y" when they do not.
func sideBySide(a, b types.Value) string {
	if types.ValuesEqual(a, b) {
		return types.FormatValue(a)
	}
	return types.FormatValue(a) + " vs " + types.FormatValue(b)
}

// tagUnion returns the curator tag columns present on either row, sorted.
func tagUnion(a, b types.Row) []string {
	set := make(map[string]bool)
	for _, tag := range CuratorTags(a) {
		set[tag.Column] = true
	}
	for _, tag := range CuratorTags(b) {
		set[tag.Column] = true
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
