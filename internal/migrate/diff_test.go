package migrate

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xchem/metagrate/pkg/types"
)

func TestDiffReportsOneSidedTags(t *testing.T) {
	a := buildTable(t,
		append(append([]string{}, identityColumns...), "[Other] Flagged", "[Other] Reviewed"),
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO", true, true},
		[]types.Value{"X-x0002_A_1_1", "cx0002a", "C2", "CCN", false, true},
	)
	b := buildTable(t,
		append(append([]string{}, identityColumns...), "[Other] Flagged", "[Other] Reviewed"),
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO", true, false},
		[]types.Value{"X-x0002_A_1_1", "cx0002a", "C2", "CCN", true, true},
	)

	report, err := Diff(a, b, DiffOptions{Longcode: true}, zerolog.Nop())
	require.NoError(t, err)

	// "Flagged" agrees on row 1 and is b-only on row 2; "Reviewed" is
	// a-only on row 1 and agrees on row 2; the "[Other] " prefix is
	// trimmed for display.
	assert.Equal(t, []string{"Code", "Long code", "Reviewed", "Flagged"}, report.Columns)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, []string{"cx0001a", "X-x0001_A_1_1", "a", ""}, report.Rows[0])
	assert.Equal(t, []string{"cx0002a", "X-x0002_A_1_1", "", "b"}, report.Rows[1])
}

func TestDiffSkipsUploadTags(t *testing.T) {
	a := buildTable(t,
		append(append([]string{}, identityColumns...), "[Other] upload_1"),
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO", true},
	)
	b := buildTable(t,
		identityColumns,
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO"},
	)

	report, err := Diff(a, b, DiffOptions{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"Code"}, report.Columns)
}

func TestDiffSkipsUnmatchedRowsSilently(t *testing.T) {
	a := buildTable(t,
		identityColumns,
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO"},
	)
	b := buildTable(t,
		identityColumns,
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO"},
		[]types.Value{"X-x9999_A_1_1", "cx9999a", "C9", "CCC"},
	)

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	report, err := Diff(a, b, DiffOptions{}, log)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.NotContains(t, buf.String(), "no observation", "diff must not warn about unmatched rows")
}

func TestDiffComparesPose(t *testing.T) {
	columns := append(append([]string{}, identityColumns...), types.ColPose)
	a := buildTable(t, columns,
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO", "P1"},
	)
	b := buildTable(t, columns,
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO", "P2"},
	)

	report, err := Diff(a, b, DiffOptions{Pose: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"Code", "Pose"}, report.Columns)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "P1 vs P2", report.Rows[0][1])
}

func TestDiffSortsByCode(t *testing.T) {
	a := buildTable(t,
		identityColumns,
		[]types.Value{"X-x0002_A_1_1", "cx0002a", "C2", "CCN"},
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO"},
	)
	b := buildTable(t,
		identityColumns,
		[]types.Value{"X-x0002_A_1_1", "cx0002a", "C2", "CCN"},
		[]types.Value{"X-x0001_A_1_1", "cx0001a", "C1", "CCO"},
	)

	report, err := Diff(a, b, DiffOptions{}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "cx0001a", report.Rows[0][0])
	assert.Equal(t, "cx0002a", report.Rows[1][0])
}
