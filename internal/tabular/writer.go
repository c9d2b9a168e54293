package tabular

import (
	"path/filepath"
	"strings"

	"github.com/xchem/metagrate/pkg/types"
)

// Write serializes the table to path, format picked by extension the same
// way Load picks it: .sqlite/.db databases, CSV for everything else.
func Write(table *types.Table, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite", ".db":
		return writeSQLite(table, path)
	default:
		return writeCSV(table, path)
	}
}
