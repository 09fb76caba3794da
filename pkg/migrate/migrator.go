package migrate

import (
	"context"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/relayout/pkg/config"
	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/arthur-debert/relayout/pkg/filesystem"
	"github.com/arthur-debert/relayout/pkg/logging"
	"github.com/arthur-debert/relayout/pkg/rules"
	"github.com/arthur-debert/relayout/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options contains options for the migrator
type Options struct {
	// ProjectRoot is the absolute OS path of the project
	ProjectRoot string

	// FS defaults to the OS filesystem
	FS types.FS

	// Classifier is required
	Classifier *rules.Classifier

	DryRun     bool
	KeepSource bool
	Overwrite  bool

	// Jobs bounds concurrent copies; values below 1 mean sequential
	Jobs int
}

// Migrator plans and executes a layout migration
type Migrator struct {
	logger     zerolog.Logger
	fs         types.FS
	classifier *rules.Classifier
	root       string
	dryRun     bool
	keepSource bool
	overwrite  bool
	jobs       int
}

// NewMigrator creates a new migrator
func NewMigrator(opts Options) (*Migrator, error) {
	if opts.Classifier == nil {
		return nil, errors.New(errors.ErrInvalidInput, "a classifier is required")
	}
	if opts.ProjectRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a project root is required")
	}
	source, target := opts.Classifier.SourceDir(), opts.Classifier.TargetDir()
	if source == target || strings.HasPrefix(target, source+"/") || strings.HasPrefix(source, target+"/") {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"source %q and target %q must not overlap", source, target).
			WithDetail("source", source).
			WithDetail("target", target)
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	return &Migrator{
		logger:     logging.GetLogger("migrate"),
		fs:         fs,
		classifier: opts.Classifier,
		root:       filepath.Clean(opts.ProjectRoot),
		dryRun:     opts.DryRun,
		keepSource: opts.KeepSource,
		overwrite:  opts.Overwrite,
		jobs:       jobs,
	}, nil
}

// ProcessFiles migrates the project at projectRoot on the OS filesystem
// using cfg for layout, rules and batch settings
func ProcessFiles(ctx context.Context, projectRoot string, cfg *config.Config) (*Result, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	classifier, err := rules.NewClassifier(cfg)
	if err != nil {
		return nil, err
	}
	m, err := NewMigrator(Options{
		ProjectRoot: projectRoot,
		Classifier:  classifier,
		KeepSource:  cfg.Migrate.KeepSource,
		Overwrite:   cfg.Migrate.Overwrite,
		Jobs:        cfg.Migrate.Jobs,
	})
	if err != nil {
		return nil, err
	}
	return m.Run(ctx)
}

// Run plans and executes the migration
func (m *Migrator) Run(ctx context.Context) (*Result, error) {
	plan, err := m.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return m.Execute(ctx, plan)
}

// Plan classifies every file below the source directory and checks the
// resulting destinations. It does not modify the filesystem.
func (m *Migrator) Plan(ctx context.Context) (*Plan, error) {
	done := logging.LogOperationStart(m.logger, "plan")
	defer done()

	sourceDir := m.classifier.SourceDir()
	targetDir := m.classifier.TargetDir()
	sourceRoot := m.abs(sourceDir)

	info, err := m.fs.Stat(sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, "source directory %s not found", sourceRoot).
			WithDetail("path", sourceRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceNotFound, "source %s is not a directory", sourceRoot).
			WithDetail("path", sourceRoot)
	}

	files, err := filesystem.ListFiles(m.fs, sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", sourceRoot)
	}

	plan := &Plan{
		ProjectRoot: m.root,
		SourceDir:   sourceDir,
		TargetDir:   targetDir,
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCanceled, "planning canceled")
		}

		fi := m.classifier.FileInfoFor(path.Join(sourceDir, file))
		if fi.Excluded {
			plan.Excluded = append(plan.Excluded, fi)
			continue
		}
		if !strings.HasPrefix(fi.DestRelativePath, targetDir+"/") {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"%s maps to %s, outside the target directory %s", fi.SourceRelativePath, fi.DestRelativePath, targetDir).
				WithDetail("source", fi.SourceRelativePath).
				WithDetail("destination", fi.DestRelativePath)
		}

		plan.Moves = append(plan.Moves, Move{
			Info:   fi,
			Source: m.abs(fi.SourceRelativePath),
			Dest:   m.abs(fi.DestRelativePath),
		})
	}

	if err := checkConflicts(plan.Moves); err != nil {
		return nil, err
	}
	if !m.overwrite {
		if err := m.checkExisting(plan.Moves); err != nil {
			return nil, err
		}
	}

	m.logger.Info().
		Int("moves", len(plan.Moves)).
		Int("excluded", len(plan.Excluded)).
		Msg("Plan ready")

	return plan, nil
}

// checkConflicts fails when two sources share a destination
func checkConflicts(moves []Move) error {
	sources := make(map[string][]string)
	for _, move := range moves {
		dest := move.Info.DestRelativePath
		sources[dest] = append(sources[dest], move.Info.SourceRelativePath)
	}

	conflicts := make(map[string][]string)
	var dests []string
	for dest, srcs := range sources {
		if len(srcs) > 1 {
			conflicts[dest] = srcs
			dests = append(dests, dest)
		}
	}
	if len(conflicts) == 0 {
		return nil
	}

	sort.Strings(dests)
	first := dests[0]
	return errors.Newf(errors.ErrDestinationConflict,
		"%d destination(s) claimed by more than one file, first: %s <- %s",
		len(dests), first, strings.Join(conflicts[first], ", ")).
		WithDetail("conflicts", conflicts)
}

// checkExisting fails when a destination is already present
func (m *Migrator) checkExisting(moves []Move) error {
	var existing []string
	for _, move := range moves {
		if filesystem.Exists(m.fs, move.Dest) {
			existing = append(existing, move.Info.DestRelativePath)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrDestinationExists,
		"%d destination(s) already exist, first: %s", len(existing), existing[0]).
		WithDetail("destinations", existing)
}

// Execute applies a plan. In dry-run mode it only reports what would happen.
func (m *Migrator) Execute(ctx context.Context, plan *Plan) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := m.logger.With().Str("run_id", runID).Logger()

	result := &Result{
		RunID:       runID,
		ProjectRoot: plan.ProjectRoot,
		DryRun:      m.dryRun,
		Moves:       plan.Moves,
		Excluded:    plan.Excluded,
	}

	logger.Info().
		Int("moves", len(plan.Moves)).
		Int("jobs", m.jobs).
		Bool("dryRun", m.dryRun).
		Bool("keepSource", m.keepSource).
		Msg("Executing migration")

	if m.dryRun {
		for _, move := range plan.Moves {
			logger.Debug().
				Str("source", move.Info.SourceRelativePath).
				Str("dest", move.Info.DestRelativePath).
				Msg("Would move file")
		}
		result.Duration = time.Since(start)
		return result, nil
	}

	if err := m.copyAll(ctx, plan.Moves); err != nil {
		logger.Error().Err(err).Msg("Migration failed while copying")
		return nil, err
	}

	if !m.keepSource {
		removed, pruned, err := m.removeSources(plan)
		result.RemovedSources = removed
		result.PrunedDirs = pruned
		if err != nil {
			logger.Error().Err(err).Msg("Migration failed while removing sources")
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	logger.Info().
		Int("moved", len(result.Moves)).
		Int("removed", len(result.RemovedSources)).
		Int("pruned", len(result.PrunedDirs)).
		Dur("duration", result.Duration).
		Msg("Migration completed")

	return result, nil
}

// copyAll copies every move, at most m.jobs at a time
func (m *Migrator) copyAll(ctx context.Context, moves []Move) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.jobs)

	for _, move := range moves {
		if gctx.Err() != nil {
			break
		}
		move := move
		g.Go(func() error {
			return m.copyFile(gctx, move)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCanceled, "migration canceled")
	}
	return nil
}

func (m *Migrator) copyFile(ctx context.Context, move Move) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCanceled, "migration canceled")
	}

	info, err := m.fs.Stat(move.Source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to stat %s", move.Info.SourceRelativePath).
			WithDetail("path", move.Source)
	}
	data, err := m.fs.ReadFile(move.Source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", move.Info.SourceRelativePath).
			WithDetail("path", move.Source)
	}
	if err := m.fs.MkdirAll(filepath.Dir(move.Dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", move.Info.DestRelativePath).
			WithDetail("path", filepath.Dir(move.Dest))
	}
	if err := m.fs.WriteFile(move.Dest, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", move.Info.DestRelativePath).
			WithDetail("path", move.Dest)
	}

	m.logger.Debug().
		Str("source", move.Info.SourceRelativePath).
		Str("dest", move.Info.DestRelativePath).
		Int("bytes", len(data)).
		Msg("Copied file")
	return nil
}

// removeSources deletes migrated files and prunes emptied directories of
// the source tree
func (m *Migrator) removeSources(plan *Plan) ([]string, []string, error) {
	removed := make([]string, 0, len(plan.Moves))
	for _, move := range plan.Moves {
		if err := m.fs.Remove(move.Source); err != nil {
			return removed, nil, errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", move.Info.SourceRelativePath).
				WithDetail("path", move.Source)
		}
		removed = append(removed, move.Source)
	}

	pruned, err := filesystem.PruneEmptyDirs(m.fs, m.abs(plan.SourceDir))
	if err != nil {
		return removed, pruned, errors.Wrap(err, errors.ErrFileRemove, "failed to prune source directories")
	}
	return removed, pruned, nil
}

func (m *Migrator) abs(rel string) string {
	return filepath.Join(m.root, filepath.FromSlash(rel))
}
