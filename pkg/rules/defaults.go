package rules

import "github.com/arthur-debert/relayout/pkg/config"

// Destination templates shared by the default rules
const (
	nestedRole = "{group}/{collection}/{name}/{type}{ext}"
	flatGroup  = "{group}/{collection}/{name}{ext}"
	flat       = "{collection}/{name}{ext}"
)

// DefaultRules returns the built-in rule table for the classic layout.
// Order matters: exclusions, pod-style components, flat components,
// route templates, route classes, data classes, then catch-all folders.
func DefaultRules() []config.Rule {
	return []config.Rule{
		// Exclusions
		{Pattern: "!**/.DS_Store"},
		{Pattern: "!**/Thumbs.db"},
		{Pattern: "!**/*.swp"},

		// Components and their templates
		{Pattern: "templates/components/**/*.hbs", Type: "template",
			Collection: "globals", CollectionGroup: "ui", Destination: nestedRole},
		{Pattern: "components/**/component.{js,ts}", Type: "component", StripSuffix: "/component",
			Collection: "globals", CollectionGroup: "ui", Destination: nestedRole},
		{Pattern: "components/**/template.hbs", Type: "template", StripSuffix: "/template",
			Collection: "globals", CollectionGroup: "ui", Destination: nestedRole},
		{Pattern: "components/**/*.{js,ts}", Type: "component",
			Collection: "globals", CollectionGroup: "ui", Destination: nestedRole},
		{Pattern: "helpers/**/*.{js,ts}", Type: "helper",
			Collection: "globals", CollectionGroup: "ui", Destination: nestedRole},

		// Routes
		{Pattern: "templates/**/*.hbs", Type: "template",
			Collection: "routes", CollectionGroup: "ui", Destination: nestedRole},
		{Pattern: "routes/**/*.{js,ts}", Type: "route",
			Collection: "routes", CollectionGroup: "ui", Destination: nestedRole},
		{Pattern: "controllers/**/*.{js,ts}", Type: "controller",
			Collection: "routes", CollectionGroup: "ui", Destination: nestedRole},

		// Data
		{Pattern: "adapters/**/*.{js,ts}", Type: "adapter",
			Collection: "models", CollectionGroup: "data", Destination: nestedRole},
		{Pattern: "serializers/**/*.{js,ts}", Type: "serializer",
			Collection: "models", CollectionGroup: "data", Destination: nestedRole},
		{Pattern: "models/**/*.{js,ts}", Type: "model",
			Collection: "models", CollectionGroup: "data", Destination: nestedRole},
		{Pattern: "transforms/**/*.{js,ts}", Type: "transform",
			Collection: "transforms", CollectionGroup: "data", Destination: flatGroup},

		// Styles
		{Pattern: "styles/**", Type: "style",
			Collection: "styles", CollectionGroup: "ui", Destination: flatGroup},

		// Shared code
		{Pattern: "services/**/*.{js,ts}", Type: "service",
			Collection: "services", Destination: flat},
		{Pattern: "utils/**/*.{js,ts}", Type: "util",
			Collection: "utils", Destination: flat},
		{Pattern: "mixins/**", Type: "util",
			Collection: "utils", Destination: "{collection}/mixins/{name}{ext}"},

		// Boot
		{Pattern: "initializers/**", Type: "initializer",
			Collection: "initializers", CollectionGroup: "init", Destination: flatGroup},
		{Pattern: "instance-initializers/**", Type: "instance-initializer",
			Collection: "instance-initializers", CollectionGroup: "init", Destination: flatGroup},
		{Pattern: "mirage/**", Type: "mirage",
			Collection: "mirage", Destination: flat},

		// Top level files
		{Pattern: "app.{js,ts}", Type: "main", Name: "main",
			Collection: "main", Destination: "{name}{ext}"},
		{Pattern: "*",
			Collection: "main", CollectionGroup: "init", Destination: "{group}/{name}{ext}"},
	}
}

// MergeRules merges user rules with the built-in rules.
// User rules are placed first to take precedence
func MergeRules(builtin, user []config.Rule) []config.Rule {
	merged := make([]config.Rule, 0, len(user)+len(builtin))
	merged = append(merged, user...)
	return append(merged, builtin...)
}
