package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsDuplicateColumns(t *testing.T) {
	_, err := NewTable([]string{"Code", "Smiles", "Code"})
	assert.Error(t, err)
}

func TestTableAppendAndGet(t *testing.T) {
	tbl := MustTable([]string{"Code", "Smiles"})
	require.NoError(t, tbl.Append([]Value{"cx0001a", "CCO"}))
	require.NoError(t, tbl.Append([]Value{"cx0002a"})) // short row pads with nulls

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "CCO", tbl.Get(0, "Smiles"))
	assert.Nil(t, tbl.Get(1, "Smiles"))
	assert.Nil(t, tbl.Get(0, "NoSuchColumn"))

	err := tbl.Append([]Value{"a", "b", "c"})
	assert.Error(t, err, "long rows must not shift cells silently")
}

func TestTableAddAndFillColumn(t *testing.T) {
	tbl := MustTable([]string{"Code"})
	require.NoError(t, tbl.Append([]Value{"a"}))
	require.NoError(t, tbl.Append([]Value{"b"}))

	tbl.AddColumn("[Other] Flagged", nil)
	require.NoError(t, tbl.Set(0, "[Other] Flagged", true))

	// Adding again must not reset staged values.
	tbl.AddColumn("[Other] Flagged", nil)
	assert.Equal(t, true, tbl.Get(0, "[Other] Flagged"))

	require.NoError(t, tbl.FillColumn("[Other] Flagged", false))
	assert.Equal(t, true, tbl.Get(0, "[Other] Flagged"))
	assert.Equal(t, false, tbl.Get(1, "[Other] Flagged"))

	assert.ErrorIs(t, tbl.FillColumn("missing", false), ErrColumnNotFound)
}

func TestTableCloneIsIndependent(t *testing.T) {
	tbl := MustTable([]string{"Code", "Smiles"})
	require.NoError(t, tbl.Append([]Value{"a", "CCO"}))

	clone := tbl.Clone()
	require.NoError(t, clone.Set(0, "Smiles", "CCN"))
	clone.AddColumn("Pose", nil)

	assert.Equal(t, "CCO", tbl.Get(0, "Smiles"))
	assert.False(t, tbl.HasColumn("Pose"))
	assert.True(t, clone.HasColumn("Pose"))
}

func TestRowAccessors(t *testing.T) {
	tbl := MustTable([]string{"Code", "[Other] Flagged"})
	require.NoError(t, tbl.Append([]Value{"cx0001a", true}))

	row := tbl.Row(0)
	assert.Equal(t, 0, row.Index())
	assert.True(t, row.Has("Code"))
	assert.False(t, row.Has("Smiles"))
	assert.Equal(t, "cx0001a", row.Get("Code"))
	assert.Equal(t, "True", row.GetString("[Other] Flagged"))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{name: "nil", value: nil, want: false},
		{name: "true", value: true, want: true},
		{name: "false", value: false, want: false},
		{name: "empty string", value: "", want: false},
		{name: "false string", value: "False", want: false},
		{name: "arbitrary string", value: "yes", want: true},
		{name: "zero", value: float64(0), want: false},
		{name: "nonzero", value: float64(2), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.value))
		})
	}
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, ValuesEqual(nil, ""))
	assert.True(t, ValuesEqual("CCO", "CCO"))
	assert.True(t, ValuesEqual(float64(1), "1"))
	assert.False(t, ValuesEqual("CCO", "CCN"))
	assert.False(t, ValuesEqual(nil, "x"))
}

func TestIsCuratorTagColumn(t *testing.T) {
	assert.True(t, IsCuratorTagColumn("[Other] Flagged"))
	assert.True(t, IsCuratorTagColumn("[Forum] Discussed"))
	assert.True(t, IsCuratorTagColumn("[Series] Series 1"))
	assert.False(t, IsCuratorTagColumn("[Unknown] Tag"))
	assert.False(t, IsCuratorTagColumn("Other] Tag"))
	assert.False(t, IsCuratorTagColumn("[Other Flagged"))
	assert.False(t, IsCuratorTagColumn("Code"))
}
