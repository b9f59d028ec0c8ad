// Package properties defines the data model shared by the propmerge packages:
// source rows read from one CodeMeta version's properties table, the merged
// items produced by reconciliation, and the version identifiers that tag them.
package properties
