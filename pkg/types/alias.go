package types

import (
	"fmt"
	"strings"
)

// aliasSeparator joins the ordinal and the name in a site alias cell,
// e.g. "3a - Z0264/A/1101".
const aliasSeparator = " - "

// Alias is a decoded site alias: an ordinal prefix assigned by the upload
// pipeline and a name that is either machine-generated or curator-chosen.
type Alias struct {
	Ordinal string
	Name    string
}

// ParseAlias decodes "<ordinal> - <name>". The split is on the first
// separator only; names may themselves contain " - ".
// Returns ErrMalformedAlias when the separator is missing.
func ParseAlias(s string) (Alias, error) {
	ordinal, name, ok := strings.Cut(s, aliasSeparator)
	if !ok {
		return Alias{}, fmt.Errorf("%w: %q", ErrMalformedAlias, s)
	}
	return Alias{Ordinal: ordinal, Name: name}, nil
}

// String re-encodes the alias in the on-disk form.
func (a Alias) String() string {
	return a.Ordinal + aliasSeparator + a.Name
}
