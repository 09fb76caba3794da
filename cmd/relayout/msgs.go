package relayout

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Move a project from the classic app/ layout to src/"
	MsgMigrateShort    = "Move every source file to its new location"
	MsgInfoShort       = "Show how paths are classified"
	MsgRulesShort      = "List the effective rule table"
	MsgRulesLong       = "Rules lists the rules in evaluation order: user rules from configuration first, then the built-in table. The first matching rule classifies a file."
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgGenConfigLong   = "Gen-config prints the effective configuration, after every layer is applied, as a TOML document suitable for .relayout.toml."
	MsgLayoutShort     = "Explain the target layout"
	MsgLayoutLong      = "Layout describes the target directory structure and shows how sample paths map with the active rules."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgFallbackWarning = "Warning: no RELAYOUT_ROOT or git repository found, using current directory: %s\n"
	MsgDebugRoot       = "Using project root: %s (fallback=%v)"

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrNoCommand  = "no command specified"
	MsgErrBadFormat  = "invalid --format: %w"
	MsgErrMigrate    = "migration failed: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat     = "Output format: auto, term, text, json or yaml"
	MsgFlagDryRun     = "Preview the moves without changing any file"
	MsgFlagKeepSource = "Copy files and leave the source tree in place"
	MsgFlagForce      = "Replace destinations that already exist"
	MsgFlagJobs       = "Number of files copied concurrently"
	MsgFlagSource     = "Source directory, relative to the project root"
	MsgFlagTarget     = "Target directory, relative to the project root"
	MsgFlagDefaults   = "Print the annotated built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/migrate-long.txt
	msgMigrateLongRaw string
	MsgMigrateLong    = strings.TrimSpace(msgMigrateLongRaw)

	//go:embed msgs/migrate-example.txt
	msgMigrateExampleRaw string
	MsgMigrateExample    = strings.TrimRight(msgMigrateExampleRaw, "\n")

	//go:embed msgs/info-long.txt
	msgInfoLongRaw string
	MsgInfoLong    = strings.TrimSpace(msgInfoLongRaw)

	//go:embed msgs/info-example.txt
	msgInfoExampleRaw string
	MsgInfoExample    = strings.TrimRight(msgInfoExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
