// Test Type: Unit Test
// Description: Tests output formats, styles and renderers

package display_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/relayout/pkg/config"
	"github.com/arthur-debert/relayout/pkg/display"
	"github.com/arthur-debert/relayout/pkg/errors"
	"github.com/arthur-debert/relayout/pkg/migrate"
	"github.com/arthur-debert/relayout/pkg/rules"
	"github.com/arthur-debert/relayout/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleInfos(t *testing.T) []types.FileInfo {
	t.Helper()
	c, err := rules.NewClassifier(config.Default())
	require.NoError(t, err)
	return []types.FileInfo{
		c.FileInfoFor("app/components/foo-bar.js"),
		c.FileInfoFor("app/.DS_Store"),
		c.FileInfoFor("README.md"),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    display.Format
		wantErr bool
	}{
		{"", display.FormatAuto, false},
		{"auto", display.FormatAuto, false},
		{"term", display.FormatTerminal, false},
		{"TEXT", display.FormatText, false},
		{"plain", display.FormatText, false},
		{"json", display.FormatJSON, false},
		{"yml", display.FormatYAML, false},
		{"xml", display.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := display.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, display.FormatText, display.DetectFormat(&bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, display.FormatText, display.DetectFormat(&bytes.Buffer{}))
}

func TestNewRenderer_LogsResolvedFormat(t *testing.T) {
	var logs bytes.Buffer
	originalLogger, originalLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&logs)

	r := display.NewRenderer(&bytes.Buffer{}, display.FormatAuto)
	assert.Equal(t, display.FormatText, r.Format())

	assert.Contains(t, logs.String(), `"component":"display.renderer"`)
	assert.Contains(t, logs.String(), `"format":"text"`)
	assert.Contains(t, logs.String(), "Creating renderer")
}

func TestStyles(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Muted", "Source", "Dest", "Type", "Pattern", "Excluded", "DryRunBanner"} {
		_, ok := display.StyleRegistry[name]
		assert.True(t, ok, "style %s should exist", name)
	}

	// Unknown styles render text unchanged
	assert.Equal(t, "plain", display.GetStyle("NoSuchStyle").Render("plain"))

	_, err := display.ParseStyles([]byte("colors: [not a map"))
	assert.Error(t, err)
}

func TestRenderFileInfos_Text(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewRenderer(&buf, display.FormatAuto)
	require.Equal(t, display.FormatText, r.Format())

	require.NoError(t, r.RenderFileInfos(sampleInfos(t)))

	out := buf.String()
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "app/components/foo-bar.js")
	assert.Contains(t, out, "src/ui/globals/foo-bar/component.js")
	assert.Contains(t, out, display.MsgExcluded)
	assert.Contains(t, out, display.MsgUnchanged)
}

func TestRenderFileInfos_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewRenderer(&buf, display.FormatJSON)
	require.NoError(t, r.RenderFileInfos(sampleInfos(t)))

	var got []types.FileInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "component", got[0].Type)
	assert.True(t, got[1].Excluded)
}

func TestRenderRules_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewRenderer(&buf, display.FormatYAML)
	require.NoError(t, r.RenderRules(rules.DefaultRules()))

	var got []config.Rule
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rules.DefaultRules(), got)
}

func TestRenderRules_Text(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewRenderer(&buf, display.FormatText)
	require.NoError(t, r.RenderRules(rules.DefaultRules()))

	out := buf.String()
	assert.Contains(t, out, "PATTERN")
	assert.Contains(t, out, "components/**/component.{js,ts}")
	assert.Contains(t, out, "!**/.DS_Store")
}

func TestRenderResult(t *testing.T) {
	infos := sampleInfos(t)
	result := &migrate.Result{
		RunID:          "run-1",
		ProjectRoot:    "/project",
		Moves:          []migrate.Move{{Info: infos[0], Source: "/project/app/components/foo-bar.js", Dest: "/project/src/ui/globals/foo-bar/component.js"}},
		Excluded:       []types.FileInfo{infos[1]},
		RemovedSources: []string{"/project/app/components/foo-bar.js"},
		PrunedDirs:     []string{"/project/app/components"},
		Duration:       42 * time.Millisecond,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, display.NewRenderer(&buf, display.FormatText).RenderResult(result))

		out := buf.String()
		assert.Contains(t, out, "src/ui/globals/foo-bar/component.js")
		assert.Contains(t, out, display.MsgExcludedHeader)
		assert.Contains(t, out, "app/.DS_Store")
		assert.Contains(t, out, "Moved 1 file(s) in 42ms")
		assert.Contains(t, out, "Removed 1 source file(s) and 1 empty director(ies).")
		assert.NotContains(t, out, display.MsgDryRunNotice)
	})

	t.Run("dry_run", func(t *testing.T) {
		dry := *result
		dry.DryRun = true
		dry.RemovedSources = nil

		var buf bytes.Buffer
		require.NoError(t, display.NewRenderer(&buf, display.FormatText).RenderResult(&dry))
		assert.Contains(t, buf.String(), display.MsgDryRunNotice)
		assert.Contains(t, buf.String(), "Would move 1 file(s).")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, display.NewRenderer(&buf, display.FormatText).RenderResult(&migrate.Result{}))
		assert.Equal(t, display.MsgNothingToMove+"\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, display.NewRenderer(&buf, display.FormatJSON).RenderResult(result))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "run-1", got["runId"])
		assert.Len(t, got["moves"], 1)
	})
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrDestinationConflict, "2 files share a destination").
		WithDetail("conflicts", map[string][]string{"src/main.js": {"app/app.js", "app/app.ts"}})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, display.NewRenderer(&buf, display.FormatText).RenderError(err))
		assert.Contains(t, buf.String(), "Error: [DESTINATION_CONFLICT] 2 files share a destination")
		assert.Contains(t, buf.String(), "conflicts: src/main.js <- app/app.js, app/app.ts")
		assert.Contains(t, buf.String(), "Hint: "+errors.Hint(err))
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, display.NewRenderer(&buf, display.FormatJSON).RenderError(err))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "DESTINATION_CONFLICT", got["code"])
		assert.Contains(t, got, "details")
		assert.Equal(t, errors.Hint(err), got["hint"])
	})
}

func TestLayoutGuide(t *testing.T) {
	c, err := rules.NewClassifier(config.Default())
	require.NoError(t, err)

	guide := display.LayoutGuide(c)
	assert.True(t, strings.HasPrefix(guide, "# Target layout"))
	assert.Contains(t, guide, "| `app/app.js` | `src/main.js` | main |")
	assert.Contains(t, guide, "| `app/models/post.js` | `src/data/models/post/model.js` | model |")

	var buf bytes.Buffer
	require.NoError(t, display.NewRenderer(&buf, display.FormatText).RenderMarkdown(guide))
	assert.Equal(t, guide, buf.String())
}
