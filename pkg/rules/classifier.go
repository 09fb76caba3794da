package rules

import (
	"path"
	"strings"

	"github.com/arthur-debert/relayout/pkg/config"
	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/arthur-debert/relayout/pkg/logging"
	"github.com/arthur-debert/relayout/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// compiledRule is a validated rule with its match pattern and static prefix
// precomputed
type compiledRule struct {
	config.Rule
	pattern string // Pattern without the exclusion marker
	prefix  string // literal directory prefix of pattern, with trailing slash
}

// Classifier maps source paths to FileInfo records. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	exclusions []compiledRule
	rules      []compiledRule
	all        []config.Rule
	sourceDir  string
	targetDir  string
	logger     zerolog.Logger
}

// NewClassifier creates a classifier from the configured layout, with the
// configured user rules ahead of the built-in table
func NewClassifier(cfg *config.Config) (*Classifier, error) {
	return NewClassifierWithRules(
		MergeRules(DefaultRules(), cfg.Rules),
		cfg.Layout.SourceDir,
		cfg.Layout.TargetDir,
	)
}

// NewClassifierWithRules creates a classifier using exactly the given rules
func NewClassifierWithRules(ruleList []config.Rule, sourceDir, targetDir string) (*Classifier, error) {
	if err := config.ValidateRules(ruleList); err != nil {
		return nil, err
	}
	sourceDir = normalize(sourceDir)
	targetDir = normalize(targetDir)
	if sourceDir == "" || targetDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "source and target directories are required")
	}

	c := &Classifier{
		all:       append([]config.Rule(nil), ruleList...),
		sourceDir: sourceDir,
		targetDir: targetDir,
		logger:    logging.GetLogger("rules.classifier"),
	}
	for _, rule := range ruleList {
		pattern := strings.TrimPrefix(rule.Pattern, "!")
		compiled := compiledRule{Rule: rule, pattern: pattern, prefix: staticPrefix(pattern)}
		if rule.IsExclusion() {
			c.exclusions = append(c.exclusions, compiled)
		} else {
			c.rules = append(c.rules, compiled)
		}
	}

	c.logger.Debug().
		Int("rules", len(c.rules)).
		Int("exclusions", len(c.exclusions)).
		Str("sourceDir", sourceDir).
		Str("targetDir", targetDir).
		Msg("Classifier ready")

	return c, nil
}

// Rules returns the effective rule table in evaluation order
func (c *Classifier) Rules() []config.Rule {
	return append([]config.Rule(nil), c.all...)
}

// SourceDir returns the normalized source directory
func (c *Classifier) SourceDir() string { return c.sourceDir }

// TargetDir returns the normalized target directory
func (c *Classifier) TargetDir() string { return c.targetDir }

// FileInfoFor classifies a path relative to the project root. It never
// fails: paths no rule matches get a best-effort FileInfo.
func (c *Classifier) FileInfoFor(relPath string) types.FileInfo {
	rel := normalize(relPath)
	if rel == "" {
		return types.FileInfo{}
	}
	info := types.FileInfo{
		SourceRelativePath: rel,
		Ext:                extOf(rel),
	}

	inner, ok := c.withinSource(rel)
	if !ok {
		info.Name = strings.TrimSuffix(path.Base(rel), info.Ext)
		info.DestRelativePath = rel
		return info
	}

	for _, rule := range c.exclusions {
		if rule.matches(inner) {
			info.Name = strings.TrimSuffix(path.Base(rel), info.Ext)
			info.Rule = rule.Pattern
			info.Excluded = true
			c.logger.Trace().Str("path", rel).Str("pattern", rule.Pattern).Msg("Path excluded")
			return info
		}
	}

	for _, rule := range c.rules {
		if rule.matches(inner) {
			info = c.apply(rule, inner, info)
			c.logger.Trace().
				Str("path", rel).
				Str("pattern", rule.Pattern).
				Str("dest", info.DestRelativePath).
				Msg("Path matched rule")
			return info
		}
	}

	info = c.fallback(inner, info)
	c.logger.Trace().Str("path", rel).Str("dest", info.DestRelativePath).Msg("No rule matched")
	return info
}

func (c *Classifier) apply(rule compiledRule, inner string, info types.FileInfo) types.FileInfo {
	name := rule.Name
	if name == "" {
		name = strings.TrimSuffix(strings.TrimPrefix(inner, rule.prefix), info.Ext)
		if rule.StripSuffix != "" {
			if stripped := strings.TrimSuffix(name, rule.StripSuffix); stripped != "" {
				name = stripped
			}
		}
	}

	info.Type = rule.Type
	info.Name = name
	info.Collection = rule.Collection
	info.CollectionGroup = rule.CollectionGroup
	info.Rule = rule.Pattern
	info.DestRelativePath = c.destination(rule.Destination, info, path.Base(inner))
	return info
}

func (c *Classifier) fallback(inner string, info types.FileInfo) types.FileInfo {
	withoutExt := strings.TrimSuffix(inner, info.Ext)
	if collection, rest, found := strings.Cut(withoutExt, "/"); found {
		info.Collection = collection
		info.Name = rest
	} else {
		info.Name = withoutExt
	}
	info.DestRelativePath = path.Join(c.targetDir, inner)
	return info
}

// destination expands a rule's template below the target directory
func (c *Classifier) destination(template string, info types.FileInfo, base string) string {
	expanded := strings.NewReplacer(
		"{group}", info.CollectionGroup,
		"{collection}", info.Collection,
		"{name}", info.Name,
		"{type}", info.Type,
		"{ext}", info.Ext,
		"{base}", base,
	).Replace(template)
	return path.Join(c.targetDir, expanded)
}

// withinSource returns rel relative to the source directory
func (c *Classifier) withinSource(rel string) (string, bool) {
	inner, found := strings.CutPrefix(rel, c.sourceDir+"/")
	if !found || inner == "" {
		return "", false
	}
	return inner, true
}

func (r compiledRule) matches(inner string) bool {
	matched, err := doublestar.Match(r.pattern, inner)
	return err == nil && matched
}

// normalize converts p to a clean slash path without a leading "./".
// Backslashes are treated as separators so Windows paths classify the same.
func normalize(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return strings.TrimPrefix(p, "./")
}

// extOf returns the extension of the last path element. Dotfiles such as
// ".gitkeep" have no extension.
func extOf(p string) string {
	base := path.Base(p)
	ext := path.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// staticPrefix returns the directory part of pattern before its first
// wildcard, including the trailing slash
func staticPrefix(pattern string) string {
	literal := pattern
	if idx := strings.IndexAny(pattern, "*?[{\\"); idx >= 0 {
		literal = pattern[:idx]
	}
	if idx := strings.LastIndex(literal, "/"); idx >= 0 {
		return literal[:idx+1]
	}
	return ""
}
