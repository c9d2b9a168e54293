package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xchem/metagrate/pkg/types"
)

// readXLSX loads the first sheet of a spreadsheet, first row as header.
func readXLSX(path string) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("read xlsx %s: no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read xlsx %s: empty sheet", path)
	}

	table, err := types.NewTable(rows[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx %s: %w", path, err)
	}

	for _, record := range rows[1:] {
		row := make([]types.Value, len(record))
		for i, cell := range record {
			row[i] = parseCell(cell)
		}
		if err := table.Append(row); err != nil {
			return nil, fmt.Errorf("read xlsx %s: %w", path, err)
		}
	}

	return table, nil
}
