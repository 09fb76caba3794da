package config

// Layout names the two directory trees involved in a migration
type Layout struct {
	// SourceDir is the classic layout root, relative to the project root
	SourceDir string `koanf:"source_dir" toml:"source_dir" json:"sourceDir" yaml:"sourceDir"`
	// TargetDir is the new layout root, relative to the project root
	TargetDir string `koanf:"target_dir" toml:"target_dir" json:"targetDir" yaml:"targetDir"`
}

// Migrate holds batch processor settings
type Migrate struct {
	KeepSource bool `koanf:"keep_source" toml:"keep_source" json:"keepSource" yaml:"keepSource"`
	Overwrite  bool `koanf:"overwrite" toml:"overwrite" json:"overwrite" yaml:"overwrite"`
	Jobs       int  `koanf:"jobs" toml:"jobs" json:"jobs" yaml:"jobs"`
}

// Rule maps a path pattern to a classification and destination template.
//
// Pattern is a doublestar glob relative to the source directory. A leading
// "!" turns the rule into an exclusion. Destination is relative to the
// target directory and may use the tokens {group}, {collection}, {name},
// {type}, {ext} and {base}.
type Rule struct {
	Pattern         string `koanf:"pattern" toml:"pattern" json:"pattern" yaml:"pattern"`
	Type            string `koanf:"type" toml:"type,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Name            string `koanf:"name" toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	StripSuffix     string `koanf:"strip_suffix" toml:"strip_suffix,omitempty" json:"stripSuffix,omitempty" yaml:"stripSuffix,omitempty"`
	Collection      string `koanf:"collection" toml:"collection,omitempty" json:"collection,omitempty" yaml:"collection,omitempty"`
	CollectionGroup string `koanf:"collection_group" toml:"collection_group,omitempty" json:"collectionGroup,omitempty" yaml:"collectionGroup,omitempty"`
	Destination     string `koanf:"destination" toml:"destination,omitempty" json:"destination,omitempty" yaml:"destination,omitempty"`
}

// IsExclusion reports whether the rule excludes files instead of
// classifying them
func (r Rule) IsExclusion() bool {
	return len(r.Pattern) > 0 && r.Pattern[0] == '!'
}

// Config is the main configuration structure
type Config struct {
	Layout  Layout  `koanf:"layout" toml:"layout" json:"layout" yaml:"layout"`
	Migrate Migrate `koanf:"migrate" toml:"migrate" json:"migrate" yaml:"migrate"`

	// Rules are user rules, tried before the built-in table
	Rules []Rule `koanf:"rules" toml:"rules,omitempty" json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	cfg, err := loadFrom(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// Only reachable with malformed embedded defaults
		return &Config{
			Layout:  Layout{SourceDir: "app", TargetDir: "src"},
			Migrate: Migrate{Jobs: 1},
		}
	}
	return cfg
}
