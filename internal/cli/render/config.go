package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .trebtc/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, sizes checks the hardhat network and reads artifacts from %s\n", artifactsDirHint())
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")

	if result.Config.Network != "" {
		fmt.Fprintf(r.out, "Network:   %s\n", result.Config.Network)
	} else {
		fmt.Fprintf(r.out, "Network:   %s\n", "(not set)")
	}
	if result.Config.Artifacts != "" {
		fmt.Fprintf(r.out, "Artifacts: %s\n", result.Config.Artifacts)
	} else {
		fmt.Fprintf(r.out, "Artifacts: (detected: %s)\n", artifactsDirHint())
	}

	fmt.Fprintf(r.out, "\n📦 Manifest: %s\n", getRelativePath(result.ManifestPath))
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (sizes falls back to hardhat)\n")
	case config.ConfigKeyArtifacts:
		fmt.Fprintf(r.out, "✅ Removed artifacts from config (sizes reads %s)\n", artifactsDirHint())
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func artifactsDirHint() string {
	return strings.Join(lo.Map(config.ArtifactsDirCandidates(), func(dir string, _ int) string {
		return dir + "/"
	}), " or ")
}
