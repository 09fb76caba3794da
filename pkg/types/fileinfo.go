package types

// FileInfo is the classification of one source path.
//
// It is derived entirely from the source path by the rule table and is
// never mutated after the classifier returns it.
type FileInfo struct {
	// SourceRelativePath is the normalized, slash-separated input path
	SourceRelativePath string `json:"sourceRelativePath" yaml:"sourceRelativePath"`

	// Ext is the file extension including the dot, empty for dotfiles
	Ext string `json:"ext" yaml:"ext"`

	// Type is the role of the file (component, template, route, ...)
	Type string `json:"type" yaml:"type"`

	// Name is the logical name, e.g. "foo-bar" or "posts/post/index"
	Name string `json:"name" yaml:"name"`

	// Collection groups files by role (globals, routes, models, styles)
	Collection string `json:"collection" yaml:"collection"`

	// CollectionGroup is the higher level grouping (ui, data, init)
	CollectionGroup string `json:"collectionGroup" yaml:"collectionGroup"`

	// DestRelativePath is the destination relative to the project root
	DestRelativePath string `json:"destRelativePath" yaml:"destRelativePath"`

	// Rule is the pattern of the rule that classified the file
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`

	// Excluded is set when an exclusion rule matched
	Excluded bool `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// Matched reports whether a classification rule (not the fallback and not
// an exclusion) produced this FileInfo.
func (f FileInfo) Matched() bool {
	return f.Rule != "" && !f.Excluded
}

// Moves reports whether migrating this file changes its location.
func (f FileInfo) Moves() bool {
	return !f.Excluded && f.DestRelativePath != "" && f.DestRelativePath != f.SourceRelativePath
}
