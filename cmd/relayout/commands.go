package relayout

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/relayout/pkg/config"
	"github.com/arthur-debert/relayout/pkg/display"
	"github.com/arthur-debert/relayout/pkg/logging"
	"github.com/arthur-debert/relayout/pkg/migrate"
	"github.com/arthur-debert/relayout/pkg/paths"
	"github.com/arthur-debert/relayout/pkg/rules"
	"github.com/arthur-debert/relayout/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// initPaths resolves the project root and warns when it fell back to the
// working directory
func initPaths(cmd *cobra.Command, projectRoot string) (paths.Paths, error) {
	p, err := paths.New(projectRoot)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.ProjectRoot())
	}
	log.Debug().Msgf(MsgDebugRoot, p.ProjectRoot(), p.UsedFallback())

	return p, nil
}

// loadConfig loads the configuration layers for a project root
func loadConfig(p paths.Paths, overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ProjectRoot: p.ProjectRoot(),
		Overrides:   overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// newRenderer creates a renderer for the command's output honoring --format
func newRenderer(cmd *cobra.Command, opts *rootOptions) (*display.Renderer, error) {
	format, err := display.ParseFormat(opts.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrBadFormat, err)
	}
	return display.NewRenderer(cmd.OutOrStdout(), format), nil
}

func newMigrateCmd(root *rootOptions) *cobra.Command {
	var (
		dryRun     bool
		keepSource bool
		force      bool
		jobs       int
		sourceDir  string
		targetDir  string
	)

	cmd := &cobra.Command{
		Use:     "migrate [project-root]",
		Short:   MsgMigrateShort,
		Long:    MsgMigrateLong,
		Example: MsgMigrateExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, root)
			if err != nil {
				return err
			}

			var projectRoot string
			if len(args) == 1 {
				projectRoot = args[0]
			}
			p, err := initPaths(cmd, projectRoot)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			flags := cmd.Flags()
			if flags.Changed("source") {
				overrides["layout.source_dir"] = sourceDir
			}
			if flags.Changed("target") {
				overrides["layout.target_dir"] = targetDir
			}
			if flags.Changed("keep-source") {
				overrides["migrate.keep_source"] = keepSource
			}
			if flags.Changed("force") {
				overrides["migrate.overwrite"] = force
			}
			if flags.Changed("jobs") {
				overrides["migrate.jobs"] = jobs
			}

			cfg, err := loadConfig(p, overrides)
			if err != nil {
				return err
			}
			classifier, err := rules.NewClassifier(cfg)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.migrate")
			logger.Info().
				Str("project_root", p.ProjectRoot()).
				Str("source", cfg.Layout.SourceDir).
				Str("target", cfg.Layout.TargetDir).
				Bool("dry_run", dryRun).
				Msg("Migrating project")

			m, err := migrate.NewMigrator(migrate.Options{
				ProjectRoot: p.ProjectRoot(),
				Classifier:  classifier,
				DryRun:      dryRun,
				KeepSource:  cfg.Migrate.KeepSource,
				Overwrite:   cfg.Migrate.Overwrite,
				Jobs:        cfg.Migrate.Jobs,
			})
			if err != nil {
				return err
			}

			result, err := m.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf(MsgErrMigrate, err)
			}
			return renderer.RenderResult(result)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	flags.BoolVar(&keepSource, "keep-source", false, MsgFlagKeepSource)
	flags.BoolVar(&force, "force", false, MsgFlagForce)
	flags.IntVarP(&jobs, "jobs", "j", 1, MsgFlagJobs)
	flags.StringVar(&sourceDir, "source", "app", MsgFlagSource)
	flags.StringVar(&targetDir, "target", "src", MsgFlagTarget)

	return cmd
}

func newInfoCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "info <path>...",
		Short:   MsgInfoShort,
		Long:    MsgInfoLong,
		Example: MsgInfoExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, root)
			if err != nil {
				return err
			}
			p, err := initPaths(cmd, "")
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p, nil)
			if err != nil {
				return err
			}
			classifier, err := rules.NewClassifier(cfg)
			if err != nil {
				return err
			}

			infos := make([]types.FileInfo, 0, len(args))
			for _, arg := range args {
				rel := arg
				if filepath.IsAbs(arg) {
					if rel, err = p.Rel(arg); err != nil {
						return err
					}
				}
				infos = append(infos, classifier.FileInfoFor(rel))
			}
			return renderer.RenderFileInfos(infos)
		},
	}
}

func newRulesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, root)
			if err != nil {
				return err
			}
			p, err := initPaths(cmd, "")
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p, nil)
			if err != nil {
				return err
			}
			classifier, err := rules.NewClassifier(cfg)
			if err != nil {
				return err
			}
			return renderer.RenderRules(classifier.Rules())
		},
	}
}

func newLayoutCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "layout",
		Short:   MsgLayoutShort,
		Long:    MsgLayoutLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, root)
			if err != nil {
				return err
			}
			p, err := initPaths(cmd, "")
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p, nil)
			if err != nil {
				return err
			}
			classifier, err := rules.NewClassifier(cfg)
			if err != nil {
				return err
			}
			return renderer.RenderMarkdown(display.LayoutGuide(classifier))
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return err
			}

			p, err := initPaths(cmd, "")
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p, nil)
			if err != nil {
				return err
			}
			data, err := cfg.MarshalTOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
