// Package fs provides file-based implementations of the punter
// fetcher, source store and exporters.
package fs

import (
	"path/filepath"
	"strings"
)

// PathToFile converts a wiki page path to a relative file path.
// Example: /Unit → Unit.html, / → index.html
func PathToFile(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return "index.html"
	}
	if strings.HasSuffix(path, ".html") {
		return filepath.FromSlash(path)
	}
	return filepath.FromSlash(path) + ".html"
}
