// Package paths provides centralized path handling for relayout.
//
// It resolves the project root (RELAYOUT_ROOT, then the enclosing git
// repository, then the working directory), converts between project
// relative slash paths and absolute OS paths, and locates relayout's own
// XDG directories.
package paths
