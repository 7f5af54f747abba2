package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List network profiles from the manifest",
		Long: `List all network profiles configured in the manifest.

Local networks (hardhat, localhost, anvil or a loopback URL) may lift the
contract size limit; every other network is treated as deployable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
