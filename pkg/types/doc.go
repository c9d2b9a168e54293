// Package types defines the tabular data model and the domain vocabulary
// shared by the metagrate loader, migrator, and CLI: tables of ordered
// rows, site alias encoding, the closed set of site-hierarchy levels, and
// the error taxonomy for migration failures.
package types
