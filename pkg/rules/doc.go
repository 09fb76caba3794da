// Package rules classifies source paths of the classic layout and computes
// their destination in the new layout.
//
// # Rule table
//
// A rule maps a doublestar pattern, relative to the source directory, to a
// type, collection, collection group and destination template:
//
//	{Pattern: "routes/**/*.{js,ts}", Type: "route", Collection: "routes",
//	 CollectionGroup: "ui", Destination: "{group}/{collection}/{name}/{type}{ext}"}
//
// Patterns with a leading "!" exclude files. Exclusions are checked before
// anything else; the remaining rules are tried in order and the first match
// wins. User rules from the configuration are placed before the built-in
// table so they can shadow it.
//
// # Names
//
// The logical name is the part of the path below the pattern's static
// prefix, without extension and without the rule's StripSuffix:
//
//	components/foo-bar/component.js  ->  foo-bar
//	routes/posts/post/index.js       ->  posts/post/index
//
// # Fallback
//
// Files no rule matches still get a best-effort classification: the first
// directory under the source directory becomes the collection and the
// destination mirrors the path under the target directory. Paths outside
// the source directory are returned unchanged.
package rules
