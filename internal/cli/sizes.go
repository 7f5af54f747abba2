package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// NewSizesCmd creates the sizes command
func NewSizesCmd() *cobra.Command {
	var artifactsDir string

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "Check compiled contracts against the code size limits",
		Long: `Check compiled contracts against EIP-170 (24,576 byte runtime code) and
EIP-3860 (49,152 byte init code).

Oversized contracts are allowed on networks with allowUnlimitedContractSize
and reported as violations everywhere else. Exits with a non-zero status on
violations.

Reads Foundry (out/) or Hardhat (artifacts/) build output.

Examples:
  trebtc sizes
  trebtc sizes --network sepolia
  trebtc sizes --artifacts artifacts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckContractSizes.Run(cmd.Context(), usecase.CheckContractSizesParams{
				ArtifactsDir: artifactsDir,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				err = render.RenderJSON(cmd.OutOrStdout(), result)
			} else {
				err = render.NewSizesRenderer(cmd.OutOrStdout()).Render(result)
			}
			if err != nil {
				return err
			}

			if result.Violations > 0 {
				return fmt.Errorf("%w on %s: %d contract(s)", domain.ErrContractTooLarge, result.Network, result.Violations)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&artifactsDir, "artifacts", "", "Build output directory (default: out/, or artifacts/ when only that exists)")

	return cmd
}
