package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a toolchain manifest",
		Long: `Create a toolchain manifest in the current project.

The default manifest pins solc 0.8.19 with the optimizer enabled at 200 runs
and lifts the contract size limit on the local hardhat network only.
Prompts for the compiler settings unless --non-interactive is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.InitManifestParams{
				Force:       force,
				Interactive: !app.Config.NonInteractive,
			}
			if format != "" {
				params.Format, err = config.ParseFormat(format)
				if err != nil {
					return err
				}
			}

			result, err := app.InitManifest.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewManifestRenderer(cmd.OutOrStdout()).RenderInit(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Manifest format: toml, yaml or json (default: toml)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing manifest")

	return cmd
}
