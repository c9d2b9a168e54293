package tabular

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/xchem/metagrate/pkg/types"
)

// metadataTable is the table name used inside .sqlite/.db exports.
const metadataTable = "metadata"

// readSQLite loads the metadata table from a SQLite database export.
// Cells are stored as TEXT and typed through parseCell, so a database round
// trip matches a CSV round trip.
func readSQLite(path string) (*types.Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s", quoteIdent(metadataTable)))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", metadataTable, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read sqlite columns: %w", err)
	}

	table, err := types.NewTable(columns)
	if err != nil {
		return nil, fmt.Errorf("read sqlite %s: %w", path, err)
	}

	scan := make([]any, len(columns))
	for i := range scan {
		scan[i] = new(sql.NullString)
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan sqlite row: %w", err)
		}
		row := make([]types.Value, len(columns))
		for i := range scan {
			if ns := scan[i].(*sql.NullString); ns.Valid {
				row[i] = parseCell(ns.String)
			}
		}
		if err := table.Append(row); err != nil {
			return nil, fmt.Errorf("read sqlite %s: %w", path, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sqlite rows: %w", err)
	}

	return table, nil
}

// writeSQLite serializes the table into a fresh database file with a single
// all-TEXT metadata table. Any existing file is replaced.
func writeSQLite(table *types.Table, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace sqlite file: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	columns := table.Columns()
	defs := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT"
		placeholders[i] = "?"
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(metadataTable), strings.Join(defs, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("create %s: %w", metadataTable, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin sqlite tx: %w", err)
	}
	defer tx.Rollback()

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(metadataTable), strings.Join(placeholders, ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(columns))
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		for j, col := range columns {
			v := row.Get(col)
			if types.IsNull(v) {
				args[j] = nil
			} else {
				args[j] = types.FormatValue(v)
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert sqlite row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sqlite tx: %w", err)
	}
	return db.Close()
}

// quoteIdent quotes a SQLite identifier; column names here contain spaces
// and brackets.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
