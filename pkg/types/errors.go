package types

import "errors"

// Fatal migration errors. All of these abort the run before any output is
// written; call sites wrap them with the offending codes and values.
var (
	// ErrAmbiguousMatch reports two or more source rows matching one
	// template longcode. Picking one arbitrarily would silently corrupt
	// curator data, so this is never resolved automatically.
	ErrAmbiguousMatch = errors.New("ambiguous source match")

	// ErrCompoundCodeMismatch reports a compound code disagreement between
	// a matched source/template row pair.
	ErrCompoundCodeMismatch = errors.New("compound code mismatch")

	// ErrSmilesMismatch reports a SMILES disagreement between a matched
	// row pair. Only returned under SmilesPolicyFatal; the default policy
	// downgrades it to a warning.
	ErrSmilesMismatch = errors.New("smiles mismatch")

	// ErrMalformedAlias reports a site alias cell without the
	// "<ordinal> - <name>" shape.
	ErrMalformedAlias = errors.New("malformed site alias")

	// ErrSiteIdentityMismatch reports the reconciler being handed two rows
	// with different longcodes. This signals a caller bug, not bad data.
	ErrSiteIdentityMismatch = errors.New("row identity mismatch")

	// ErrAliasInconsistency reports a template-side site name observed
	// mapping to two different source-side names across the dataset.
	ErrAliasInconsistency = errors.New("site alias inconsistency")
)

// Table errors.
var (
	// ErrColumnNotFound reports a write to a column the table lacks.
	ErrColumnNotFound = errors.New("column not found")
)
