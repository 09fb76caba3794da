package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/relayout/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot is the primary environment variable for the project location
	EnvProjectRoot = "RELAYOUT_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// AppDirName is the directory name for relayout-specific files
const AppDirName = "relayout"

// Paths provides centralized path management for relayout
type Paths interface {
	ProjectRoot() string
	UsedFallback() bool
	Abs(rel string) string
	Rel(abs string) (string, error)
	ConfigDir() string
	StateDir() string
}

type paths struct {
	projectRoot string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given project root.
// If projectRoot is empty, it will be determined from environment variables,
// the enclosing git repository or the working directory.
func New(projectRoot string) (Paths, error) {
	p := &paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = expandHome(projectRoot)
	}

	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	return p, nil
}

func (p *paths) ProjectRoot() string { return p.projectRoot }

func (p *paths) UsedFallback() bool { return p.usedFallback }

// Abs converts a slash-separated project relative path to an OS path
func (p *paths) Abs(rel string) string {
	return filepath.Join(p.projectRoot, filepath.FromSlash(rel))
}

// Rel converts an OS path to a slash-separated project relative path
func (p *paths) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(p.projectRoot, abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "%s is not below %s", abs, p.projectRoot)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is outside the project root %s", abs, p.projectRoot)
	}
	return filepath.ToSlash(rel), nil
}

// ConfigDir returns the XDG config directory for relayout
func (p *paths) ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the XDG state directory for relayout
func (p *paths) StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// findProjectRoot determines the project root using the following priority:
// 1. RELAYOUT_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return path
		}
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
