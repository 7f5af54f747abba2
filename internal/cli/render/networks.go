package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render prints the configured networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in the manifest")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Networks:")
	fmt.Fprintln(r.out)

	title := cases.Title(language.English)

	t := newTable()
	t.AppendHeader(table.Row{"", "NETWORK", "CHAIN ID", "KIND", "SIZE LIMIT", "URL"})
	for _, network := range result.Networks {
		marker := ""
		if network.Name == result.Selected {
			marker = "*"
		}

		chainID := "-"
		if network.ChainID != 0 {
			chainID = strconv.FormatUint(network.ChainID, 10)
		}

		kind := deployableStyle.Sprint(title.String("deployable"))
		if network.Local {
			kind = localStyle.Sprint(title.String("local"))
		}

		limit := "EIP-170"
		if network.AllowUnlimitedContractSize {
			limit = localStyle.Sprint("unlimited")
		}

		url := network.URL
		if url == "" {
			url = "-"
		}

		t.AppendRow(table.Row{marker, network.Name, chainID, kind, limit, url})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// newTable returns a borderless table in the style used across the CLI
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatDefault
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	return t
}
