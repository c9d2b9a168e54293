package types

import "path"

// SiteType enumerates the five levels of the site hierarchy, from conformer
// sites down to quaternary assemblies. The set is closed: reconciliation and
// renaming iterate SiteTypes, so a new level added here is picked up
// everywhere at compile time.
type SiteType int

const (
	ConformerSites SiteType = iota
	CanonSites
	CrystalformSites
	Crystalforms
	Quatassemblies
)

// SiteTypes lists all site types in reconciliation order.
var SiteTypes = []SiteType{
	ConformerSites,
	CanonSites,
	CrystalformSites,
	Crystalforms,
	Quatassemblies,
}

var siteTypeNames = map[SiteType]string{
	ConformerSites:   "ConformerSites",
	CanonSites:       "CanonSites",
	CrystalformSites: "CrystalformSites",
	Crystalforms:     "Crystalforms",
	Quatassemblies:   "Quatassemblies",
}

func (s SiteType) String() string {
	if name, ok := siteTypeNames[s]; ok {
		return name
	}
	return "SiteType(?)"
}

// AliasColumn returns the table column holding this site type's alias,
// e.g. "CanonSites alias".
func (s SiteType) AliasColumn() string {
	return s.String() + " alias"
}

// Auto-naming shapes per site type. Each pattern pins the slash-delimited
// segment count; the x-prefixed segment is a crystal position code like
// "x0264". Matching uses path.Match, so '*' never crosses a '/'.
var generatedShapes = map[SiteType][]string{
	ConformerSites: {
		"*-x[0-9][0-9][0-9][0-9]",
		"*[0-9][0-9][0-9][0-9]/*/*",
	},
	CanonSites: {
		"*-x[0-9][0-9][0-9][0-9]/*/*/*",
		"*[0-9][0-9][0-9][0-9]/*/*/*",
	},
	CrystalformSites: {
		"*-x[0-9][0-9][0-9][0-9]/*/*",
		"*[0-9][0-9][0-9][0-9]/*/*",
	},
	Crystalforms: {
		"*_*_*",
		"*/*/*",
	},
	// Quatassembly names ("monomer", "dimer", ...) are always assigned by
	// hand, so no shapes are listed.
	Quatassemblies: nil,
}

// MachineGenerated reports whether an alias name matches this site type's
// auto-naming convention rather than a curator-chosen label.
func (s SiteType) MachineGenerated(name string) bool {
	for _, shape := range generatedShapes[s] {
		// The shapes are static and valid, so Match cannot fail.
		if ok, _ := path.Match(shape, name); ok {
			return true
		}
	}
	return false
}
