package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a manifest serialization format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ManifestBaseName is the file name (without extension) the loader looks for
const ManifestBaseName = "toolchain"

// ManifestFileNames lists manifest file names in lookup order
func ManifestFileNames() []string {
	return []string{
		ManifestBaseName + ".toml",
		ManifestBaseName + ".yaml",
		ManifestBaseName + ".yml",
		ManifestBaseName + ".json",
	}
}

// ParseFormat parses a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported manifest format %q (expected toml, yaml or json)", s)
	}
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot determine manifest format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Extension returns the canonical file extension for the format
func (f Format) Extension() string {
	return "." + string(f)
}
