package graphio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a network description from path, auto-detecting the
// format by file extension: ".yaml" and ".yml" parse as YAML, ".txt" and
// extension-less files parse as the plain-text format. Anything else is
// rejected with ErrUnknownFormat rather than guessed at.
func LoadFile(path string) (*NetMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt", "":
		return ParseText(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
