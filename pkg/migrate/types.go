package migrate

import (
	"time"

	"github.com/arthur-debert/relayout/pkg/types"
)

// Move is one planned file relocation
type Move struct {
	Info types.FileInfo `json:"info" yaml:"info"`

	// Source and Dest are absolute OS paths
	Source string `json:"source" yaml:"source"`
	Dest   string `json:"dest" yaml:"dest"`
}

// Plan is the full set of moves for a project
type Plan struct {
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`
	SourceDir   string `json:"sourceDir" yaml:"sourceDir"`
	TargetDir   string `json:"targetDir" yaml:"targetDir"`

	Moves    []Move           `json:"moves" yaml:"moves"`
	Excluded []types.FileInfo `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// Destinations returns the destination of every move, relative to the
// project root, in plan order
func (p *Plan) Destinations() []string {
	dests := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		dests[i] = m.Info.DestRelativePath
	}
	return dests
}

// Result describes a finished (or simulated) migration
type Result struct {
	RunID       string `json:"runId" yaml:"runId"`
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`
	DryRun      bool   `json:"dryRun" yaml:"dryRun"`

	Moves    []Move           `json:"moves" yaml:"moves"`
	Excluded []types.FileInfo `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	// RemovedSources and PrunedDirs are absolute OS paths
	RemovedSources []string `json:"removedSources,omitempty" yaml:"removedSources,omitempty"`
	PrunedDirs     []string `json:"prunedDirs,omitempty" yaml:"prunedDirs,omitempty"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}
