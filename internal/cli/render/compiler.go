package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// CompilerRenderer renders the configured compiler
type CompilerRenderer struct {
	out io.Writer
}

// NewCompilerRenderer creates a new compiler renderer
func NewCompilerRenderer(out io.Writer) *CompilerRenderer {
	return &CompilerRenderer{out: out}
}

// Render prints the compiler version and, if resolved, the published build
func (r *CompilerRenderer) Render(result *usecase.ResolveCompilerResult) error {
	if result.Release == nil {
		fmt.Fprintln(r.out, result.Version)
		return nil
	}

	release := result.Release
	sectionHeaderStyle.Fprintf(r.out, "solc %s\n", release.LongVersion)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Platform:"), release.Platform)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Build:   "), release.Path)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("SHA256:  "), release.SHA256)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("URL:     "), release.DownloadURL)
	if release.Latest {
		fmt.Fprintln(r.out, okStyle.Sprint("  latest release"))
	}
	return nil
}
