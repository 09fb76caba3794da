// Package filesystem provides filesystem implementations for relayout.
//
// This package contains implementations of the types.FS interface backed by
// the OS and by afero, plus helpers that walk an FS into sorted relative
// paths and prune directories left empty after a migration.
package filesystem
