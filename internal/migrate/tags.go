package migrate

import "github.com/xchem/metagrate/pkg/types"

// Tag is one curator annotation pulled from a row.
type Tag struct {
	Column string
	Value  types.Value
}

// CuratorTags extracts the curator-authored tag columns from a row, in row
// column order. Columns qualify by the "[Category] Label" naming
// convention; nothing else about the row is inspected or modified.
func CuratorTags(row types.Row) []Tag {
	var tags []Tag
	for _, col := range row.Columns() {
		if types.IsCuratorTagColumn(col) {
			tags = append(tags, Tag{Column: col, Value: row.Get(col)})
		}
	}
	return tags
}
