package editor

import (
	"fmt"
	"regexp"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportMarkdown serializes the form's title, short description and body
// into a single markdown blob plus a download filename. The body markup is
// carried verbatim; no conversion is attempted.
func ExportMarkdown(fields Fields) (filename, content string) {
	content = fmt.Sprintf("# %s\n\n%s\n\n%s", fields.Title, fields.ShortDescription, fields.Content)
	name := whitespaceRun.ReplaceAllString(fields.Title, "_")
	if name == "" {
		name = "untitled"
	}
	return name + ".md", content
}
