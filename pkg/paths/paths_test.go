package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitRoot(t *testing.T) {
	root := t.TempDir()

	p, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, root, p.ProjectRoot())
	assert.False(t, p.UsedFallback())
}

func TestNew_RelativeRootBecomesAbsolute(t *testing.T) {
	p, err := New("some/project")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p.ProjectRoot()))
	assert.Equal(t, "project", filepath.Base(p.ProjectRoot()))
}

func TestNew_FromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvProjectRoot, root)

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, root, p.ProjectRoot())
	assert.False(t, p.UsedFallback())
}

func TestExpandHome(t *testing.T) {
	t.Setenv(EnvHome, "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"~", "/home/tester"},
		{"~/work/app", "/home/tester/work/app"},
		{"/abs/path", "/abs/path"},
		{"rel/~path", "rel/~path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, expandHome(tt.in))
		})
	}
}

func TestAbsRel(t *testing.T) {
	p, err := New("/project")
	require.NoError(t, err)

	abs := p.Abs("app/routes/index.js")
	assert.Equal(t, filepath.Join("/project", "app", "routes", "index.js"), abs)

	rel, err := p.Rel(abs)
	require.NoError(t, err)
	assert.Equal(t, "app/routes/index.js", rel)

	_, err = p.Rel("/elsewhere/file.js")
	assert.Error(t, err)
}

func TestXDGDirs(t *testing.T) {
	p, err := New("/project")
	require.NoError(t, err)

	assert.Equal(t, AppDirName, filepath.Base(p.ConfigDir()))
	assert.Equal(t, AppDirName, filepath.Base(p.StateDir()))
}
