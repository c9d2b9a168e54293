// Package tabular loads and writes metadata tables. The on-disk format is
// picked by file extension: .xlsx spreadsheets, .sqlite/.db databases, and
// CSV for everything else. All formats produce the same in-memory Table;
// cell typing matches what a CSV round trip preserves.
package tabular

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xchem/metagrate/pkg/types"
)

// Load reads the table at path. Tables without a Pose column predate the
// current export format; that is reported as a warning, not an error.
func Load(path string, log zerolog.Logger) (*types.Table, error) {
	var (
		table *types.Table
		err   error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		table, err = readXLSX(path)
	case ".sqlite", ".db":
		table, err = readSQLite(path)
	default:
		table, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	if !table.HasColumn(types.ColPose) {
		log.Warn().Str("path", path).Msg("old metadata format (no Pose column)")
	}

	return table, nil
}

// parseCell types a raw cell the way the upstream exports encode values:
// empty is null, True/False are booleans, numerics are floats, anything
// else stays a string.
func parseCell(s string) types.Value {
	switch {
	case s == "":
		return nil
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
