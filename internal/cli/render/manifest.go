package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// ManifestRenderer renders the loaded manifest
type ManifestRenderer struct {
	out io.Writer
}

// NewManifestRenderer creates a new manifest renderer
func NewManifestRenderer(out io.Writer) *ManifestRenderer {
	return &ManifestRenderer{out: out}
}

// Render prints the resolved manifest
func (r *ManifestRenderer) Render(result *usecase.ShowManifestResult) error {
	manifest := result.Manifest
	solidity := manifest.Config.Solidity

	fmt.Fprintf(r.out, "📄 %s (%s)\n\n", getRelativePath(manifest.Path), manifest.Format)

	sectionHeaderStyle.Fprintln(r.out, "Compiler")
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Version:  "), solidity.Version)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Optimizer:"), formatOptimizer(solidity.Settings.Optimizer))
	if solidity.Settings.EVMVersion != "" {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("EVM:      "), solidity.Settings.EVMVersion)
	}
	fmt.Fprintln(r.out)

	sectionHeaderStyle.Fprintln(r.out, "Networks")
	names := manifest.Config.NetworkNames()
	if len(names) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
	for _, name := range names {
		network := manifest.Config.Networks[name]
		line := "  " + color.New(color.Bold).Sprint(name)
		if network.ChainID != 0 {
			line += labelStyle.Sprintf(" chain %d", network.ChainID)
		}
		if network.AllowUnlimitedContractSize {
			line += " " + localStyle.Sprint("[unlimited contract size]")
		}
		fmt.Fprintln(r.out, line)
	}

	if len(manifest.Warnings) > 0 {
		fmt.Fprintln(r.out)
		for _, warning := range manifest.Warnings {
			fmt.Fprintln(r.out, FormatWarning(warning))
		}
	}

	return nil
}

// RenderValidation prints the outcome of validating the manifest
func (r *ManifestRenderer) RenderValidation(result *usecase.ValidateManifestResult) error {
	path := getRelativePath(result.Path)

	if result.Valid {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s is valid (solc %s)", path, result.CompilerVersion)))
		for _, warning := range result.Warnings {
			fmt.Fprintln(r.out, FormatWarning(warning))
		}
		return nil
	}

	fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf("❌ %s is invalid", path))
	for _, e := range result.Errors {
		fmt.Fprintf(r.out, "  • %s\n", e)
	}
	for _, v := range result.Violations {
		fmt.Fprintf(r.out, "  • %s %s: %s\n", violationStyle.Sprint(v.Network), v.Setting, v.Reason)
	}
	return nil
}

// RenderExport prints exported content or where it was written
func (r *ManifestRenderer) RenderExport(result *usecase.ExportManifestResult) error {
	if result.OutputPath == "" {
		_, err := r.out.Write(result.Content)
		return err
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Exported %s to %s (%s)",
		getRelativePath(result.SourcePath), getRelativePath(result.OutputPath), result.Format)))
	return nil
}

// RenderInit prints the created manifest
func (r *ManifestRenderer) RenderInit(result *usecase.InitManifestResult) error {
	verb := "Created"
	if result.Overwritten {
		verb = "Overwrote"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s", verb, getRelativePath(result.Path))))
	fmt.Fprintf(r.out, "   solc %s, optimizer %s\n",
		result.Config.Solidity.Version, formatOptimizer(result.Config.Solidity.Settings.Optimizer))
	return nil
}

func formatOptimizer(optimizer config.OptimizerConfig) string {
	if !optimizer.Enabled {
		return "disabled"
	}
	return numbers.Sprintf("enabled, %d runs", optimizer.Runs)
}
