package migrate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xchem/metagrate/pkg/types"
)

// Options controls one migration run.
type Options struct {
	// TransferSiteTags enables site alias reconciliation and the rename
	// post-pass. Off, only curator tags move.
	TransferSiteTags bool

	// WarnOnNoMatch reports template rows without a source counterpart.
	WarnOnNoMatch bool

	// SmilesPolicy selects warn-or-fatal for SMILES disagreements.
	SmilesPolicy SmilesPolicy
}

// DefaultOptions returns the options the CLI defaults to.
func DefaultOptions() Options {
	return Options{
		TransferSiteTags: true,
		WarnOnNoMatch:    true,
		SmilesPolicy:     SmilesWarn,
	}
}

// TagSummary reports the transfer outcome for one curator tag column.
type TagSummary struct {
	Column   string
	Migrated int
	True     int
}

// Migrator runs annotation migrations. One Migrator may run repeatedly;
// each run owns its own cache and output table.
type Migrator struct {
	opts Options
	log  zerolog.Logger
}

// NewMigrator creates a Migrator with the given options.
func NewMigrator(opts Options, log zerolog.Logger) *Migrator {
	return &Migrator{opts: opts, log: log}
}

// Migrate produces a copy of template enriched with source's curator
// annotations, plus a per-column transfer summary. Source and template are
// never modified. Any fatal inconsistency aborts with no output table.
func (m *Migrator) Migrate(source, template *types.Table) (*types.Table, []TagSummary, error) {
	runID := uuid.Must(uuid.NewV7()).String()
	log := m.log.With().Str("run", runID).Logger()

	out := template.Clone()
	cache := NewSiteAliasCache(log)
	matcher := NewMatcher(log, m.opts.SmilesPolicy, m.opts.WarnOnNoMatch)

	// Buffered values per curator tag column, in first-encounter order.
	var tagOrder []string
	tagValues := make(map[string][]types.Value)

	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)

		matched, ok, err := matcher.Match(row, source)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			// Unmatched rows keep default annotations.
			log.Debug().Str("longcode", row.GetString(types.ColLongCode)).Msg("no curator tags")
			continue
		}

		if m.opts.TransferSiteTags {
			if err := cache.Reconcile(matched, row); err != nil {
				return nil, nil, err
			}
		}

		for _, tag := range CuratorTags(matched) {
			if _, seen := tagValues[tag.Column]; !seen {
				tagOrder = append(tagOrder, tag.Column)
			}
			tagValues[tag.Column] = append(tagValues[tag.Column], tag.Value)

			out.AddColumn(tag.Column, nil)
			if err := out.Set(i, tag.Column, tag.Value); err != nil {
				return nil, nil, fmt.Errorf("stage curator tag: %w", err)
			}
		}
	}

	summaries := make([]TagSummary, 0, len(tagOrder))
	for _, col := range tagOrder {
		// Rows without a source counterpart get an explicit false.
		if err := out.FillColumn(col, false); err != nil {
			return nil, nil, fmt.Errorf("fill curator tag: %w", err)
		}
		trues := 0
		for _, v := range tagValues[col] {
			if types.Truthy(v) {
				trues++
			}
		}
		summaries = append(summaries, TagSummary{
			Column:   col,
			Migrated: len(tagValues[col]),
			True:     trues,
		})
	}

	if m.opts.TransferSiteTags {
		if err := NewRenamer(log).Apply(cache, out); err != nil {
			return nil, nil, err
		}
	}

	return out, summaries, nil
}
