package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-toolchain/internal/adapters/progress"
	"github.com/trebuchet-org/treb-toolchain/internal/app"
	"github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cancel context.CancelFunc

	rootCmd := &cobra.Command{
		Use:   "trebtc",
		Short: "Solidity toolchain manifest for Foundry and Hardhat projects",
		Long: `trebtc loads, validates and exports the project's toolchain manifest
(toolchain.toml): the solc version, optimizer settings and network profiles.

Every command validates the manifest first and fails on an unusable compiler
version, out-of-range optimizer runs, or an unlimited contract size on a
network that can be deployed to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipAppInit(cmd) {
				return nil
			}

			projectRoot, err := resolveProjectRoot(cmd)
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v, newProgressSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cancel != nil {
				cancel()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("manifest", "", "Path to the toolchain manifest (default: toolchain.toml in the project root)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network profile to use (e.g., hardhat, sepolia)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Timeout for network operations")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "manifest",
		Title: "Manifest Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "toolchain",
		Title: "Toolchain Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{NewShowCmd(), NewValidateCmd(), NewExportCmd(), NewInitCmd()} {
		c.GroupID = "manifest"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{NewCompilerCmd(), NewNetworksCmd(), NewSizesCmd()} {
		c.GroupID = "toolchain"
		rootCmd.AddCommand(c)
	}

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs rootCmd and cancels every context derived for the command once it
// returns. PersistentPostRun is skipped when RunE fails, so it cannot do this alone.
func Execute(ctx context.Context, rootCmd *cobra.Command) (*cobra.Command, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return rootCmd.ExecuteContextC(ctx)
}

// skipAppInit reports whether cmd runs without a project
func skipAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

// resolveProjectRoot picks the directory of an explicit --manifest,
// otherwise the nearest directory holding a manifest. init may run anywhere.
func resolveProjectRoot(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("manifest"); f != nil && f.Value.String() != "" {
		abs, err := filepath.Abs(f.Value.String())
		if err != nil {
			return "", fmt.Errorf("failed to resolve manifest path: %w", err)
		}
		return filepath.Dir(abs), nil
	}

	projectRoot, err := config.FindProjectRoot()
	if err == nil {
		return projectRoot, nil
	}
	if cmd.Name() != "init" || !errors.Is(err, domain.ErrManifestNotFound) {
		return "", err
	}
	return os.Getwd()
}

// newProgressSink shows spinners only for interactive, human-readable output
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
