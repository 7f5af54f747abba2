package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert the manifest to TOML, YAML or JSON",
		Long: `Re-serialize the validated manifest in another format.

Without --output the result is written to stdout.

Examples:
  trebtc export --format json
  trebtc export --format yaml -o toolchain.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ExportManifestParams{OutputPath: output}
			if format != "" {
				params.Format, err = config.ParseFormat(format)
				if err != nil {
					return err
				}
			}

			result, err := app.ExportManifest.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewManifestRenderer(cmd.OutOrStdout()).RenderExport(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: toml, yaml or json (default: format of the manifest)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
