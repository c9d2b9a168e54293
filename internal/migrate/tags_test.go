package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xchem/metagrate/pkg/types"
)

func TestCuratorTags(t *testing.T) {
	table := types.MustTable([]string{
		"Code",
		"[Other] Flagged",
		"Smiles",
		"[Forum] Discussed",
		"[Series] Series 1",
		"[Unknown] Ignored",
	})
	require.NoError(t, table.Append([]types.Value{"cx0001a", true, "CCO", false, "yes", true}))

	tags := CuratorTags(table.Row(0))

	require.Len(t, tags, 3)
	assert.Equal(t, "[Other] Flagged", tags[0].Column)
	assert.Equal(t, true, tags[0].Value)
	assert.Equal(t, "[Forum] Discussed", tags[1].Column)
	assert.Equal(t, false, tags[1].Value)
	assert.Equal(t, "[Series] Series 1", tags[2].Column)
	assert.Equal(t, "yes", tags[2].Value)
}

func TestCuratorTagsNonepresent(t *testing.T) {
	table := types.MustTable([]string{"Code", "Smiles"})
	require.NoError(t, table.Append([]types.Value{"cx0001a", "CCO"}))

	assert.Empty(t, CuratorTags(table.Row(0)))
}
