// Package formats reads and writes mesh interchange files.
package formats

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a mesh file format.
type Format string

// Supported formats.
const (
	FormatOBJ Format = "obj"
	FormatSTL Format = "stl"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case FormatOBJ, FormatSTL:
		return f, nil
	}
	return "", fmt.Errorf("unsupported mesh format %q", name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
