package display

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	"github.com/arthur-debert/relayout/pkg/rules"
	"github.com/charmbracelet/glamour"
)

//go:embed layout.md
var layoutGuide string

// layoutSamples are paths relative to the source directory used to
// illustrate the active rules
var layoutSamples = []string{
	"app.js",
	"router.js",
	"index.html",
	"components/foo-bar.js",
	"templates/components/foo-bar.hbs",
	"components/foo-bar/component.js",
	"components/foo-bar/template.hbs",
	"helpers/format-date.js",
	"routes/posts.js",
	"templates/posts.hbs",
	"controllers/posts.js",
	"models/post.js",
	"adapters/post.js",
	"serializers/post.js",
	"transforms/date.js",
	"styles/app.css",
	"services/session.js",
	"utils/slug.js",
	"mixins/foo/bar.js",
	"initializers/setup.js",
	"instance-initializers/boot.js",
	"mirage/config.js",
}

// LayoutGuide returns the layout guide as markdown, followed by a table of
// sample paths mapped with c
func LayoutGuide(c *rules.Classifier) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(layoutGuide))
	b.WriteString("\n\n## Examples\n\n")
	fmt.Fprintf(&b, "Mapping `%s/` to `%s/` with the active rules:\n\n", c.SourceDir(), c.TargetDir())
	b.WriteString("| Source | Destination | Type |\n|---|---|---|\n")
	for _, sample := range layoutSamples {
		info := c.FileInfoFor(path.Join(c.SourceDir(), sample))
		dest := info.DestRelativePath
		if info.Excluded {
			dest = MsgExcluded
		}
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", info.SourceRelativePath, dest, info.Type)
	}
	return b.String()
}

// RenderMarkdown writes a markdown document. Terminal output is rendered
// with glamour; text output is the markdown source.
func (r *Renderer) RenderMarkdown(content string) error {
	if r.structured() {
		return r.encode(map[string]string{"markdown": content})
	}
	if r.format == FormatTerminal {
		content = renderGlamour(content, 100)
	}
	_, err := fmt.Fprintln(r.w, strings.TrimRight(content, "\n"))
	return err
}

func renderGlamour(content string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
