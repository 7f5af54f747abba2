package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the toolchain manifest",
		Long: `Validate the toolchain manifest and report every problem found:

  - the compiler version must be a full semantic version (0.8.19, not 0.8)
  - optimizer runs must be an integer between 0 and 4294967295
  - allowUnlimitedContractSize is only permitted on local networks

Exits with a non-zero status when the manifest is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateManifest.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				if err := render.RenderJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if err := render.NewManifestRenderer(cmd.OutOrStdout()).RenderValidation(result); err != nil {
				return err
			}

			if !result.Valid {
				return fmt.Errorf("%w: %d problem(s) found", domain.ErrInvalidManifest, len(result.Errors)+len(result.Violations))
			}
			return nil
		},
	}

	return cmd
}
