package types

import "fmt"

// Table is an ordered sequence of rows sharing one column set. Column order
// is preserved through load, migration, and write. A Table has a single
// writer at any time; concurrent readers are safe only without writers.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]Value
}

// NewTable creates an empty table with the given column set.
// Duplicate column names are rejected.
func NewTable(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		index[c] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// MustTable is NewTable for static column sets; panics on duplicates.
// Intended for tests and literals.
func MustTable(columns []string) *Table {
	t, err := NewTable(columns)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns the column names in order. The slice is a copy.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.cells) }

// Row returns a read view of row i.
func (t *Table) Row(i int) Row { return Row{table: t, index: i} }

// Append adds a row. Short rows are padded with nulls; long rows are an
// error so loader bugs surface instead of shifting cells.
func (t *Table) Append(row []Value) error {
	if len(row) > len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.columns))
	}
	cells := make([]Value, len(t.columns))
	copy(cells, row)
	t.cells = append(t.cells, cells)
	return nil
}

// Get returns the cell at row i, named column; nil when the column is absent.
func (t *Table) Get(i int, column string) Value {
	j, ok := t.index[column]
	if !ok {
		return nil
	}
	return t.cells[i][j]
}

// Set writes the cell at row i, named column.
// Returns ErrColumnNotFound for unknown columns.
func (t *Table) Set(i int, column string, v Value) error {
	j, ok := t.index[column]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	t.cells[i][j] = v
	return nil
}

// AddColumn appends a new column filled with def for every existing row.
// Adding an existing column is a no-op so migration can stage the same
// curator tag column repeatedly.
func (t *Table) AddColumn(name string, def Value) {
	if _, ok := t.index[name]; ok {
		return
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.cells {
		t.cells[i] = append(t.cells[i], def)
	}
}

// FillColumn replaces every null cell in the named column with def.
// Returns ErrColumnNotFound for unknown columns.
func (t *Table) FillColumn(name string, def Value) error {
	j, ok := t.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	for i := range t.cells {
		if IsNull(t.cells[i][j]) {
			t.cells[i][j] = def
		}
	}
	return nil
}

// Clone returns a deep copy sharing nothing with the receiver.
func (t *Table) Clone() *Table {
	out := &Table{
		columns: append([]string(nil), t.columns...),
		index:   make(map[string]int, len(t.index)),
		cells:   make([][]Value, len(t.cells)),
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	for i, row := range t.cells {
		out.cells[i] = append([]Value(nil), row...)
	}
	return out
}
