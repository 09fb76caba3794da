// Package testutil provides utilities for testing relayout components.
//
// Key components:
//   - TestEnvironment: test orchestrator with isolation and cleanup
//   - FileTree: flat path -> content description of a project tree
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it runs on an afero in-memory filesystem
//   - Use EnvIsolated when the code under test talks to the OS directly
//   - Define fixture trees inline, not in external files
package testutil
