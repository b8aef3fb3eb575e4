package render

// PrettyOpts configures pretty-printing of a directive.
type PrettyOpts struct {
	Color       bool
	ShowOutcome bool
	// ShowEditorLine also prints the 0-based line the highlighting
	// collaborator would receive.
	ShowEditorLine bool
}

// JSONOpts configures JSON output of a directive.
type JSONOpts struct {
	Indent            bool
	IncludeEditorLine bool
}
