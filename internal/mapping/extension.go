// Package mapping walks a directory tree and renders the Markdown file mapping report.
package mapping

import "strings"

const (
	// NoExtensionLabel tallies files whose names carry no suffix.
	NoExtensionLabel = "no_extension"

	extensionSeparator = "."
)

// ExtensionLabel returns the lowercased suffix of fileName without its separator.
// A leading dot does not start a suffix, so ".bashrc" and "README" both map to NoExtensionLabel,
// as does a name ending in a dot.
func ExtensionLabel(fileName string) string {
	separatorIndex := strings.LastIndex(fileName, extensionSeparator)
	if separatorIndex <= 0 || separatorIndex == len(fileName)-1 {
		return NoExtensionLabel
	}
	return strings.ToLower(fileName[separatorIndex+1:])
}
