package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/arthur-debert/relayout/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "RELAYOUT_"

	// EnvUserConfig overrides the user config file location
	EnvUserConfig = "RELAYOUT_CONFIG"
)

// ProjectConfigFiles are the file names looked up at the project root, in order
var ProjectConfigFiles = []string{".relayout.toml", "relayout.toml"}

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ProjectRoot is searched for ProjectConfigFiles; empty skips the layer
	ProjectRoot string

	// UserConfigPath overrides the XDG user config location
	UserConfigPath string

	// Overrides are applied last, keyed by koanf path ("migrate.jobs")
	Overrides map[string]interface{}

	SkipUserConfig bool
	SkipEnv        bool
}

// Load builds the effective configuration from, in increasing priority:
// embedded defaults, user config, project config, RELAYOUT_ environment
// variables and explicit overrides. The result is validated.
func Load(opts LoadOptions) (*Config, error) {
	cfg, err := loadFrom(opts)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFrom(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = UserConfigPath()
		}
		if err := loadFileIfExists(k, userPath); err != nil {
			return nil, err
		}
	}

	// 3. Project config, first file found wins
	if opts.ProjectRoot != "" {
		for _, name := range ProjectConfigFiles {
			path := filepath.Join(opts.ProjectRoot, name)
			if _, err := os.Stat(path); err == nil {
				if err := loadFileIfExists(k, path); err != nil {
					return nil, err
				}
				logger.Debug().Str("path", path).Msg("Loaded project config")
				break
			}
		}
	}

	// 4. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Layout.SourceDir = cleanDir(cfg.Layout.SourceDir)
	cfg.Layout.TargetDir = cleanDir(cfg.Layout.TargetDir)

	logger.Debug().
		Str("sourceDir", cfg.Layout.SourceDir).
		Str("targetDir", cfg.Layout.TargetDir).
		Int("jobs", cfg.Migrate.Jobs).
		Int("userRules", len(cfg.Rules)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps RELAYOUT_MIGRATE_KEEP_SOURCE to migrate.keep_source: the
// first segment is the section, the rest is the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// UserConfigPath returns the per-user config file location
func UserConfigPath() string {
	if path := os.Getenv(EnvUserConfig); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, "relayout", "config.toml")
}

func cleanDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(dir))
}
