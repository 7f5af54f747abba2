package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// SizesRenderer renders contract size reports
type SizesRenderer struct {
	out io.Writer
}

// NewSizesRenderer creates a new sizes renderer
func NewSizesRenderer(out io.Writer) *SizesRenderer {
	return &SizesRenderer{out: out}
}

// Render prints every contract with its sizes and status against the network limits
func (r *SizesRenderer) Render(result *usecase.CheckContractSizesResult) error {
	limit := fmt.Sprintf("runtime limit %s, init code limit %s", FormatBytes(result.RuntimeLimit), FormatBytes(result.InitCodeLimit))
	if result.UnlimitedSize {
		limit = "contract size limit disabled"
	}
	fmt.Fprintf(r.out, "📦 Contract sizes on %s (%s)\n\n", result.Network, limit)

	if len(result.Contracts) == 0 {
		fmt.Fprintf(r.out, "No compiled contracts found in %s\n", getRelativePath(result.ArtifactsDir))
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "RUNTIME", "INIT CODE", "MARGIN", "STATUS"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, c := range result.Contracts {
		t.AppendRow(table.Row{
			c.Name,
			FormatBytes(c.RuntimeSize),
			FormatBytes(c.InitCodeSize),
			FormatBytes(c.RuntimeMargin),
			formatStatus(c.Status),
		})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	switch {
	case result.Violations > 0:
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%d of %d contracts exceed the size limits of %s", result.Violations, len(result.Contracts), result.Network)))
	case result.Oversized > 0:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d contracts exceed EIP-170/EIP-3860 and would not deploy outside local networks", result.Oversized)))
	default:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("All %d contracts are within the size limits", len(result.Contracts))))
	}
	return nil
}

func formatStatus(status domain.SizeStatus) string {
	switch status {
	case domain.SizeStatusAllowed:
		return localStyle.Sprint("over limit (allowed)")
	case domain.SizeStatusViolation:
		return violationStyle.Sprint("over limit")
	default:
		return okStyle.Sprint("ok")
	}
}
