package config

import (
	"path"
	"strings"

	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the layout directories, migrate settings and user rules
func Validate(cfg *Config) error {
	if err := validateDir("layout.source_dir", cfg.Layout.SourceDir); err != nil {
		return err
	}
	if err := validateDir("layout.target_dir", cfg.Layout.TargetDir); err != nil {
		return err
	}

	source, target := cfg.Layout.SourceDir, cfg.Layout.TargetDir
	if source == target || isWithin(source, target) || isWithin(target, source) {
		return errors.Newf(errors.ErrConfigValid,
			"source_dir %q and target_dir %q must not overlap", source, target)
	}

	if cfg.Migrate.Jobs < 1 {
		return errors.Newf(errors.ErrConfigValid, "migrate.jobs must be at least 1, got %d", cfg.Migrate.Jobs)
	}

	return ValidateRules(cfg.Rules)
}

func validateDir(key, dir string) error {
	switch {
	case dir == "" || dir == ".":
		return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key)
	case path.IsAbs(dir):
		return errors.Newf(errors.ErrConfigValid, "%s must be relative to the project root, got %q", key, dir)
	case dir == ".." || strings.HasPrefix(dir, "../"):
		return errors.Newf(errors.ErrConfigValid, "%s must stay inside the project root, got %q", key, dir)
	}
	return nil
}

// isWithin reports whether child is nested below parent
func isWithin(child, parent string) bool {
	return strings.HasPrefix(child, parent+"/")
}

// ValidateRules checks that rules are valid
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" || rule.Pattern == "!" {
			return errors.Newf(errors.ErrRuleInvalid, "rule %d has empty pattern", i).
				WithDetail("index", i)
		}
		pattern := strings.TrimPrefix(rule.Pattern, "!")
		if !doublestar.ValidatePattern(pattern) {
			return errors.Newf(errors.ErrRuleInvalid, "rule %d has invalid pattern %q", i, rule.Pattern).
				WithDetail("index", i)
		}
		if !rule.IsExclusion() && rule.Destination == "" {
			return errors.Newf(errors.ErrRuleInvalid, "rule %d (%s) has empty destination", i, rule.Pattern).
				WithDetail("index", i)
		}
	}
	return nil
}
