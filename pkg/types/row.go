package types

import (
	"strconv"
	"strings"
)

// Identity columns shared by source and template exports.
const (
	ColLongCode     = "Long code"
	ColShortCode    = "Code"
	ColCompoundCode = "Compound code"
	ColSmiles       = "Smiles"
	ColPose         = "Pose"
)

// CuratorTagCategories is the set of bracketed prefixes that mark a column
// as curator-authored, e.g. "[Other] Flagged".
var CuratorTagCategories = []string{"Other", "Forum", "Series"}

// Value is a single table cell: string, float64, bool, or nil for
// null/absent. Loaders produce these four kinds only.
type Value any

// IsNull reports whether v is a null cell. Empty strings count as null to
// match how CSV exports encode missing values.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// Truthy reports whether v counts as a set curator tag.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != "" && !strings.EqualFold(x, "false")
	default:
		return false
	}
}

// FormatValue renders v the way the CSV writer serializes it. Booleans use
// the Python-style True/False spelling the upstream exports carry.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return ""
	}
}

// ValuesEqual compares two cells by their serialized form, so "1" and 1.0
// read back from different formats compare equal. Two nulls are equal.
func ValuesEqual(a, b Value) bool {
	if IsNull(a) && IsNull(b) {
		return true
	}
	return FormatValue(a) == FormatValue(b)
}

// IsCuratorTagColumn reports whether a column name follows the
// "[Category] Label" curator tag convention for a known category.
func IsCuratorTagColumn(name string) bool {
	if !strings.HasPrefix(name, "[") {
		return false
	}
	end := strings.Index(name, "]")
	if end < 0 {
		return false
	}
	category := name[1:end]
	for _, c := range CuratorTagCategories {
		if category == c {
			return true
		}
	}
	return false
}

// Row is a read view over one table row. Rows share their table's column
// index; copying a Row is cheap and does not copy cells.
type Row struct {
	table *Table
	index int
}

// Index returns the row's position in its table.
func (r Row) Index() int { return r.index }

// Columns returns the column names in table order.
func (r Row) Columns() []string { return r.table.Columns() }

// Has reports whether the row's table carries the named column.
func (r Row) Has(column string) bool {
	_, ok := r.table.index[column]
	return ok
}

// Get returns the cell for the named column, or nil when the table lacks
// the column. Absent and null cells are indistinguishable on purpose.
func (r Row) Get(column string) Value {
	i, ok := r.table.index[column]
	if !ok {
		return nil
	}
	return r.table.cells[r.index][i]
}

// GetString returns the cell rendered as a string.
func (r Row) GetString(column string) string {
	return FormatValue(r.Get(column))
}
