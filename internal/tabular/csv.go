package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xchem/metagrate/pkg/types"
)

// readCSV loads a CSV file. The first record is the header; short records
// are padded with nulls by the table.
func readCSV(path string) (*types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged exports exist in the wild

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read csv %s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	table, err := types.NewTable(header)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		row := make([]types.Value, len(record))
		for i, cell := range record {
			row[i] = parseCell(cell)
		}
		if err := table.Append(row); err != nil {
			return nil, fmt.Errorf("read csv %s: %w", path, err)
		}
	}

	return table, nil
}

// writeCSV serializes the table, every column in order, no index column.
func writeCSV(table *types.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	columns := table.Columns()
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(columns))
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		for j, col := range columns {
			record[j] = types.FormatValue(row.Get(col))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
