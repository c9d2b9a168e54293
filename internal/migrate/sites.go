package migrate

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/xchem/metagrate/pkg/types"
)

// SiteAliasCache accumulates, per site type, the mapping from template-side
// alias name to source-side alias name observed across all matched row
// pairs. The invariant: a template name, once cached, must map to the same
// source name for the whole run — first writer wins, later writers must
// agree. One cache belongs to exactly one migration run.
type SiteAliasCache struct {
	log     zerolog.Logger
	entries map[types.SiteType]map[string]string
}

// NewSiteAliasCache creates an empty cache for one run.
func NewSiteAliasCache(log zerolog.Logger) *SiteAliasCache {
	entries := make(map[types.SiteType]map[string]string, len(types.SiteTypes))
	for _, st := range types.SiteTypes {
		entries[st] = make(map[string]string)
	}
	return &SiteAliasCache{log: log, entries: entries}
}

// Reconcile checks the site alias columns of a matched row pair against
// each other and against everything seen so far, growing the cache with
// new observations. Neither row is modified.
//
// The longcode identity check guards against a caller pairing unrelated
// rows; failing it means a bug upstream, not bad data.
func (c *SiteAliasCache) Reconcile(source, template types.Row) error {
	srcCode := source.GetString(types.ColLongCode)
	tmplCode := template.GetString(types.ColLongCode)
	if srcCode != tmplCode {
		return fmt.Errorf("%w: source %q vs template %q (try --transfer-site-tags=false)",
			types.ErrSiteIdentityMismatch, srcCode, tmplCode)
	}

	for _, st := range types.SiteTypes {
		col := st.AliasColumn()

		srcAlias, err := types.ParseAlias(source.GetString(col))
		if err != nil {
			return fmt.Errorf("source %q for %s: %w", col, srcCode, err)
		}
		tmplAlias, err := types.ParseAlias(template.GetString(col))
		if err != nil {
			return fmt.Errorf("template %q for %s: %w", col, tmplCode, err)
		}

		cached, seen := c.entries[st][tmplAlias.Name]
		if seen {
			if cached != srcAlias.Name {
				c.log.Error().
					Str("column", col).
					Str("template", tmplAlias.Name).
					Str("cached", cached).
					Str("observed", srcAlias.Name).
					Msg("site alias cache contradiction")
				return fmt.Errorf("%w: %s %q maps to both %q and %q (%s)",
					types.ErrAliasInconsistency, col, tmplAlias.Name, cached, srcAlias.Name, srcCode)
			}
			continue
		}

		c.log.Debug().
			Str("column", col).
			Str("template", tmplAlias.Name).
			Str("source", srcAlias.Name).
			Msg("caching site alias")
		c.entries[st][tmplAlias.Name] = srcAlias.Name
	}

	return nil
}
