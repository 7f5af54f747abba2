package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-toolchain/internal/cli/render"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// NewCompilerCmd creates the compiler command
func NewCompilerCmd() *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "compiler",
		Short: "Print the configured solc version",
		Long: `Print the solc version selected by the manifest.

With --resolve the version is looked up in the published solc release list
for this platform, and the command fails if no such build exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveCompiler.Run(cmd.Context(), usecase.ResolveCompilerParams{Resolve: resolve})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewCompilerRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Look the version up in the solc release list")

	return cmd
}
