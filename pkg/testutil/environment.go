package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/relayout/pkg/filesystem"
	"github.com/arthur-debert/relayout/pkg/types"
	"github.com/google/go-cmp/cmp"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// FileTree maps slash-separated paths relative to the project root to
// file contents
type FileTree map[string]string

// TestEnvironment provides a project root on a filesystem
type TestEnvironment struct {
	ProjectRoot string
	FS          types.FS
	Type        EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.ProjectRoot = "/virtual/project"
		env.FS = filesystem.NewMemoryFS()
	case EnvIsolated:
		env.ProjectRoot = filepath.Join(t.TempDir(), "project")
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.ProjectRoot, 0755); err != nil {
		t.Fatalf("Failed to create project root: %v", err)
	}

	// Keep log files out of the user's state directory
	t.Setenv("RELAYOUT_LOG_FILE", filepath.Join(t.TempDir(), "relayout.log"))

	return env
}

// Path returns the OS path of a project relative slash path
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.ProjectRoot, filepath.FromSlash(rel))
}

// WithFileTree writes every file of tree below the project root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()

	for rel, content := range tree {
		full := env.Path(rel)
		if err := env.FS.MkdirAll(filepath.Dir(full), 0755); err != nil {
			env.t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := env.FS.WriteFile(full, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write file %s: %v", rel, err)
		}
	}
}

// ReadFileTree reads every file below the project root
func (env *TestEnvironment) ReadFileTree() FileTree {
	env.t.Helper()

	files, err := filesystem.ListFiles(env.FS, env.ProjectRoot)
	if err != nil {
		env.t.Fatalf("Failed to list project files: %v", err)
	}

	tree := make(FileTree, len(files))
	for _, rel := range files {
		data, err := env.FS.ReadFile(env.Path(rel))
		if err != nil {
			env.t.Fatalf("Failed to read %s: %v", rel, err)
		}
		tree[rel] = string(data)
	}
	return tree
}

// AssertFileTree fails the test when the project tree differs from want
func (env *TestEnvironment) AssertFileTree(want FileTree) {
	env.t.Helper()

	if diff := cmp.Diff(want, env.ReadFileTree()); diff != "" {
		env.t.Errorf("project tree mismatch (-want +got):\n%s", diff)
	}
}

// Exists reports whether a project relative path exists
func (env *TestEnvironment) Exists(rel string) bool {
	return filesystem.Exists(env.FS, env.Path(rel))
}

// Paths returns the sorted paths of a tree
func (tree FileTree) Paths() []string {
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
