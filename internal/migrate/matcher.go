// Package migrate implements the annotation migration between a source
// metadata export (older, curator-annotated) and a template export (newer,
// structurally authoritative): row correspondence, curator tag transfer,
// site alias reconciliation, and the post-pass that rewrites curator
// renames onto the output table.
package migrate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xchem/metagrate/pkg/types"
)

// SmilesPolicy selects how a SMILES disagreement between matched rows is
// handled. Both behaviors exist in the field, so the choice is explicit
// rather than hard-coded.
type SmilesPolicy string

const (
	SmilesWarn  SmilesPolicy = "warn"
	SmilesFatal SmilesPolicy = "fatal"
)

// ParseSmilesPolicy validates a policy string from a flag or config file.
func ParseSmilesPolicy(s string) (SmilesPolicy, error) {
	switch SmilesPolicy(s) {
	case SmilesWarn, SmilesFatal:
		return SmilesPolicy(s), nil
	case "":
		return SmilesWarn, nil
	default:
		return "", fmt.Errorf("invalid smiles policy %q (want warn or fatal)", s)
	}
}

// Matcher resolves, for each template row, the corresponding source row.
type Matcher struct {
	log          zerolog.Logger
	smilesPolicy SmilesPolicy
	warnNoMatch  bool
}

// NewMatcher creates a Matcher. warnNoMatch controls whether unresolved
// template rows are reported; the diff path runs with it off.
func NewMatcher(log zerolog.Logger, policy SmilesPolicy, warnNoMatch bool) *Matcher {
	return &Matcher{log: log, smilesPolicy: policy, warnNoMatch: warnNoMatch}
}

// Match finds the source row corresponding to the template row by longcode.
// An exact match is tried first, then a legacy-suffix prefix match. No match
// is not an error (ok is false); two or more candidates are fatal, because
// picking one would silently attach the wrong curator annotations.
func (m *Matcher) Match(template types.Row, source *types.Table) (types.Row, bool, error) {
	longcode := template.GetString(types.ColLongCode)

	candidates := matchExact(source, longcode)
	if len(candidates) == 0 {
		// Old exports carry a single-digit version suffix like "_v1"
		// where new ones have "_1" plus a trailing crystal reference.
		longcode = normalizeLegacyLongcode(longcode)
		candidates = matchPrefix(source, longcode)
	}

	switch len(candidates) {
	case 1:
	case 0:
		if m.warnNoMatch {
			m.log.Warn().Str("longcode", longcode).Msg("no observation in source")
		}
		return types.Row{}, false, nil
	default:
		return types.Row{}, false, fmt.Errorf("%w: %d observations in source with %q=%q",
			types.ErrAmbiguousMatch, len(candidates), types.ColLongCode, longcode)
	}

	matched := source.Row(candidates[0])
	if err := m.validate(matched, template); err != nil {
		return types.Row{}, false, err
	}
	return matched, true, nil
}

// normalizeLegacyLongcode rewrites a legacy "vN" version suffix to the
// current bare-digit form, e.g. "Tgt-x0450_A_201_v1" -> "Tgt-x0450_A_201_1".
// Codes without the suffix are returned unchanged.
func normalizeLegacyLongcode(code string) string {
	if len(code) >= 2 && code[len(code)-2] == 'v' {
		return code[:len(code)-2] + code[len(code)-1:]
	}
	return code
}

func matchExact(source *types.Table, longcode string) []int {
	var out []int
	for i := 0; i < source.Len(); i++ {
		if source.Row(i).GetString(types.ColLongCode) == longcode {
			out = append(out, i)
		}
	}
	return out
}

func matchPrefix(source *types.Table, longcode string) []int {
	var out []int
	for i := 0; i < source.Len(); i++ {
		if strings.HasPrefix(source.Row(i).GetString(types.ColLongCode), longcode) {
			out = append(out, i)
		}
	}
	return out
}

// validate cross-checks the stable identity fields of a matched pair.
// Compound code disagreement is fatal; null compound codes warn; SMILES
// disagreement follows the configured policy.
func (m *Matcher) validate(source, template types.Row) error {
	shortCode := source.GetString(types.ColShortCode)

	srcCompound := source.Get(types.ColCompoundCode)
	tmplCompound := template.Get(types.ColCompoundCode)

	if types.IsNull(srcCompound) {
		m.log.Warn().Str("code", shortCode).Msg("null compound code in source")
	}
	if types.IsNull(tmplCompound) {
		m.log.Warn().Str("code", shortCode).Msg("null compound code in template")
	}

	if !types.IsNull(srcCompound) && !types.IsNull(tmplCompound) &&
		!types.ValuesEqual(srcCompound, tmplCompound) {
		m.log.Error().
			Str("source", types.FormatValue(srcCompound)).
			Str("template", types.FormatValue(tmplCompound)).
			Msg("compound codes disagree")
		return fmt.Errorf("%w: source does not match template for %s",
			types.ErrCompoundCodeMismatch, shortCode)
	}

	srcSmiles := source.Get(types.ColSmiles)
	tmplSmiles := template.Get(types.ColSmiles)
	if !types.ValuesEqual(srcSmiles, tmplSmiles) {
		if m.smilesPolicy == SmilesFatal {
			return fmt.Errorf("%w: source %q does not match template %q for %s",
				types.ErrSmilesMismatch, types.FormatValue(srcSmiles),
				types.FormatValue(tmplSmiles), shortCode)
		}
		m.log.Warn().
			Str("source", types.FormatValue(srcSmiles)).
			Str("template", types.FormatValue(tmplSmiles)).
			Str("code", shortCode).
			Msg("SMILES in source do not match template")
	}

	return nil
}
