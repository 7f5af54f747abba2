package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved toolchain manifest",
		Long: `Show the toolchain manifest after loading .env files, expanding
environment variables and applying defaults.

Unrecognized options are reported as warnings and otherwise ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowManifest.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result.Manifest.Config)
			}

			return render.NewManifestRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
