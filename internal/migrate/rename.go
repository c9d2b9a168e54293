package migrate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xchem/metagrate/pkg/types"
)

// Renamer rewrites curator site renames from a reconciled cache onto the
// output table. Cache entries whose source name is itself machine-generated
// carry no curation and are dropped, as are identity mappings.
type Renamer struct {
	log zerolog.Logger
}

// NewRenamer creates a Renamer.
func NewRenamer(log zerolog.Logger) *Renamer {
	return &Renamer{log: log}
}

// Apply prunes the cache and rewrites every surviving rename into the
// matching alias cells of out. The ordinal prefix is kept from the output
// side: it is read off the first matching row, and any row that disagrees
// on the ordinal is reported before being rewritten anyway.
func (r *Renamer) Apply(cache *SiteAliasCache, out *types.Table) error {
	prune(cache)

	for _, st := range types.SiteTypes {
		col := st.AliasColumn()

		// Sorted for deterministic rename order and logging.
		names := make([]string, 0, len(cache.entries[st]))
		for name := range cache.entries[st] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, old := range names {
			newName := cache.entries[st][old]

			var matches []int
			for i := 0; i < out.Len(); i++ {
				if strings.HasSuffix(out.Row(i).GetString(col), old) {
					matches = append(matches, i)
				}
			}
			if len(matches) == 0 {
				r.log.Debug().Str("column", col).Str("name", old).Msg("no rows to rename")
				continue
			}

			first, err := types.ParseAlias(out.Row(matches[0]).GetString(col))
			if err != nil {
				return fmt.Errorf("rename %q: %w", col, err)
			}

			for _, i := range matches {
				alias, err := types.ParseAlias(out.Row(i).GetString(col))
				if err != nil {
					return fmt.Errorf("rename %q: %w", col, err)
				}
				if alias.Ordinal != first.Ordinal {
					r.log.Warn().
						Str("column", col).
						Str("name", old).
						Str("ordinal", alias.Ordinal).
						Str("applied", first.Ordinal).
						Msg("rows sharing a site name disagree on ordinal")
				}
				renamed := types.Alias{Ordinal: first.Ordinal, Name: newName}
				if err := out.Set(i, col, renamed.String()); err != nil {
					return fmt.Errorf("rename %q: %w", col, err)
				}
			}

			r.log.Info().
				Str("column", col).
				Str("from", old).
				Str("to", newName).
				Int("rows", len(matches)).
				Msg("renamed site alias")
		}
	}

	return nil
}

// prune drops cache entries that would not change anything: identity
// mappings, and mappings whose source-side name matches the site type's
// auto-naming shape.
func prune(cache *SiteAliasCache) {
	for _, st := range types.SiteTypes {
		for old, newName := range cache.entries[st] {
			if old == newName || st.MachineGenerated(newName) {
				delete(cache.entries[st], old)
			}
		}
	}
}
