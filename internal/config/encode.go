package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// EncodeManifest writes cfg in the given format.
// Decoding the output yields an identical ToolchainConfig.
func EncodeManifest(w io.Writer, cfg *config.ToolchainConfig, format config.Format) error {
	switch format {
	case config.FormatTOML:
		enc := toml.NewEncoder(w)
		enc.Indent = ""
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode TOML manifest: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode YAML manifest: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML manifest: %w", err)
		}
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode JSON manifest: %w", err)
		}
	default:
		return fmt.Errorf("unsupported manifest format %q", format)
	}
	return nil
}
