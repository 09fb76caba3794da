package migrate_test

import "github.com/arthur-debert/relayout/pkg/testutil"

// classicInput is a small project in the classic layout
var classicInput = testutil.FileTree{
	"README.md":                            "# project",
	"package.json":                         `{"name":"project"}`,
	"app/app.js":                           "import Application from 'app';",
	"app/router.js":                        "Router.map(function() {});",
	"app/index.html":                       "<html></html>",
	"app/.DS_Store":                        "junk",
	"app/components/foo-bar.js":            "foo-bar component",
	"app/templates/components/foo-bar.hbs": "{{yield}}",
	"app/components/x-baz/component.js":    "x-baz component",
	"app/components/x-baz/template.hbs":    "<div>{{x}}</div>",
	"app/helpers/format-date.js":           "helper",
	"app/routes/posts.js":                  "posts route",
	"app/routes/posts/show.js":             "post route",
	"app/templates/posts.hbs":              "{{outlet}}",
	"app/templates/posts/show.hbs":         "{{model.title}}",
	"app/controllers/posts.js":             "posts controller",
	"app/models/post.js":                   "post model",
	"app/adapters/post.js":                 "post adapter",
	"app/serializers/post.js":              "post serializer",
	"app/transforms/date.js":               "date transform",
	"app/styles/app.css":                   "body {}",
	"app/styles/components/badges.css":     ".badge {}",
	"app/services/session.js":              "session",
	"app/utils/slug.js":                    "slug",
	"app/mixins/foo/bar.js":                "mixin",
	"app/initializers/setup.js":            "setup",
	"app/instance-initializers/boot.js":    "boot",
	"app/mirage/config.js":                 "mirage config",
	"app/mirage/factories/post.js":         "post factory",
}

// classicOutput is classicInput after migration. Excluded files and files
// outside app/ stay where they are.
var classicOutput = testutil.FileTree{
	"README.md":                              "# project",
	"package.json":                           `{"name":"project"}`,
	"app/.DS_Store":                          "junk",
	"src/main.js":                            "import Application from 'app';",
	"src/init/router.js":                     "Router.map(function() {});",
	"src/init/index.html":                    "<html></html>",
	"src/ui/globals/foo-bar/component.js":    "foo-bar component",
	"src/ui/globals/foo-bar/template.hbs":    "{{yield}}",
	"src/ui/globals/x-baz/component.js":      "x-baz component",
	"src/ui/globals/x-baz/template.hbs":      "<div>{{x}}</div>",
	"src/ui/globals/format-date/helper.js":   "helper",
	"src/ui/routes/posts/route.js":           "posts route",
	"src/ui/routes/posts/show/route.js":      "post route",
	"src/ui/routes/posts/template.hbs":       "{{outlet}}",
	"src/ui/routes/posts/show/template.hbs":  "{{model.title}}",
	"src/ui/routes/posts/controller.js":      "posts controller",
	"src/data/models/post/model.js":          "post model",
	"src/data/models/post/adapter.js":        "post adapter",
	"src/data/models/post/serializer.js":     "post serializer",
	"src/data/transforms/date.js":            "date transform",
	"src/ui/styles/app.css":                  "body {}",
	"src/ui/styles/components/badges.css":    ".badge {}",
	"src/services/session.js":                "session",
	"src/utils/slug.js":                      "slug",
	"src/utils/mixins/foo/bar.js":            "mixin",
	"src/init/initializers/setup.js":         "setup",
	"src/init/instance-initializers/boot.js": "boot",
	"src/mirage/config.js":                   "mirage config",
	"src/mirage/factories/post.js":           "post factory",
}
