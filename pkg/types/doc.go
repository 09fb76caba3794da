// Package types holds the value types and interfaces shared across relayout.
//
// FileInfo is the classification record produced for every source path and
// FS is the filesystem abstraction the migrator writes through, so that the
// same code runs against the real disk and an in-memory tree in tests.
package types
