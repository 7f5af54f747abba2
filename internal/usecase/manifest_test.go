package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

func TestShowManifest(t *testing.T) {
	ctx := context.Background()

	store := new(MockManifestStore)
	manifest := loadedManifest(config.DefaultToolchainConfig())
	manifest.Warnings = []string{`unrecognized option "networks[hardhat].gasPrice" ignored`}
	store.On("Load", ctx).Return(manifest, nil)

	uc := usecase.NewShowManifest(store, discardLogger())
	result, err := uc.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, "0.8.19", result.Manifest.Config.CompilerVersion())
	assert.Len(t, result.Manifest.Warnings, 1)
	store.AssertExpectations(t)
}

func TestValidateManifest(t *testing.T) {
	ctx := context.Background()

	t.Run("valid manifest", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("GetPath").Return("/project/toolchain.toml")
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)

		result, err := usecase.NewValidateManifest(store, discardLogger()).Run(ctx)
		require.NoError(t, err)

		assert.True(t, result.Valid)
		assert.Equal(t, "0.8.19", result.CompilerVersion)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Violations)
	})

	t.Run("separates policy violations from other errors", func(t *testing.T) {
		violation := domain.PolicyViolation{Network: "mainnet", Setting: "allowUnlimitedContractSize", Reason: "only permitted on local test networks"}
		merr := multierror.Append(nil,
			fmt.Errorf("%w: \"0.8\" must specify major, minor and patch", domain.ErrInvalidCompilerVersion),
			violation,
		)
		loadErr := fmt.Errorf("failed to load toolchain.toml: %w", merr)

		store := new(MockManifestStore)
		store.On("GetPath").Return("/project/toolchain.toml")
		store.On("Load", ctx).Return(nil, loadErr)

		result, err := usecase.NewValidateManifest(store, discardLogger()).Run(ctx)
		require.NoError(t, err)

		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.True(t, strings.Contains(result.Errors[0], "major, minor and patch"))
		require.Len(t, result.Violations, 1)
		assert.Equal(t, "mainnet", result.Violations[0].Network)
	})

	t.Run("missing manifest is an error", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("GetPath").Return("/project/toolchain.toml")
		store.On("Load", ctx).Return(nil, fmt.Errorf("%w: /project/toolchain.toml", domain.ErrManifestNotFound))

		_, err := usecase.NewValidateManifest(store, discardLogger()).Run(ctx)
		assert.ErrorIs(t, err, domain.ErrManifestNotFound)
	})
}

func TestExportManifest(t *testing.T) {
	ctx := context.Background()

	t.Run("renders in the requested format", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)

		result, err := usecase.NewExportManifest(store).Run(ctx, usecase.ExportManifestParams{Format: config.FormatYAML})
		require.NoError(t, err)

		assert.Equal(t, config.FormatYAML, result.Format)
		assert.Contains(t, string(result.Content), "0.8.19")
		assert.Contains(t, string(result.Content), "allowUnlimitedContractSize: true")
	})

	t.Run("defaults to the source format", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)

		result, err := usecase.NewExportManifest(store).Run(ctx, usecase.ExportManifestParams{})
		require.NoError(t, err)
		assert.Equal(t, config.FormatTOML, result.Format)
	})

	t.Run("writes to an output file", func(t *testing.T) {
		cfg := config.DefaultToolchainConfig()
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(cfg), nil)
		store.On("Write", ctx, "/project/toolchain.json", cfg, config.FormatJSON).Return(nil)

		result, err := usecase.NewExportManifest(store).Run(ctx, usecase.ExportManifestParams{
			Format:     config.FormatJSON,
			OutputPath: "/project/toolchain.json",
		})
		require.NoError(t, err)

		assert.Nil(t, result.Content)
		assert.Equal(t, "/project/toolchain.json", result.OutputPath)
		store.AssertExpectations(t)
	})

	t.Run("refuses to overwrite the source", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)

		_, err := usecase.NewExportManifest(store).Run(ctx, usecase.ExportManifestParams{
			Format:     config.FormatTOML,
			OutputPath: "/project/toolchain.toml",
		})
		assert.Error(t, err)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("refuses to overwrite the source through a relative path", func(t *testing.T) {
		dir, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		source := filepath.Join(dir, "toolchain.toml")
		require.NoError(t, os.WriteFile(source, []byte("# keep me\nsolidity = \"0.8.19\"\n"), 0644))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "contracts"), 0755))

		manifest := loadedManifest(config.DefaultToolchainConfig())
		manifest.Path = source

		for _, output := range []string{"toolchain.toml", "./toolchain.toml", "contracts/../toolchain.toml"} {
			t.Run(output, func(t *testing.T) {
				t.Chdir(dir)
				store := new(MockManifestStore)
				store.On("Load", ctx).Return(manifest, nil)

				_, err := usecase.NewExportManifest(store).Run(ctx, usecase.ExportManifestParams{
					Format:     config.FormatTOML,
					OutputPath: output,
				})
				require.Error(t, err)
				assert.Contains(t, err.Error(), "refusing to overwrite")
				store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}

		data, err := os.ReadFile(source)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# keep me")
	})

	t.Run("refuses to overwrite the source through a symlink", func(t *testing.T) {
		dir := t.TempDir()
		source := filepath.Join(dir, "toolchain.toml")
		require.NoError(t, os.WriteFile(source, []byte("solidity = \"0.8.19\"\n"), 0644))
		link := filepath.Join(dir, "linked.toml")
		if err := os.Symlink(source, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		manifest := loadedManifest(config.DefaultToolchainConfig())
		manifest.Path = source
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(manifest, nil)

		_, err := usecase.NewExportManifest(store).Run(ctx, usecase.ExportManifestParams{OutputPath: link})
		require.Error(t, err)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestInitManifest(t *testing.T) {
	ctx := context.Background()
	runtimeCfg := &config.RuntimeConfig{ProjectRoot: "/project"}

	t.Run("writes the default manifest", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Exists").Return(false)
		store.On("GetPath").Return("/project/toolchain.toml")
		store.On("Write", ctx, "/project/toolchain.toml", config.DefaultToolchainConfig(), config.FormatTOML).Return(nil)

		result, err := usecase.NewInitManifest(runtimeCfg, store, nil).Run(ctx, usecase.InitManifestParams{})
		require.NoError(t, err)

		assert.Equal(t, "/project/toolchain.toml", result.Path)
		assert.False(t, result.Overwritten)
		assert.Equal(t, config.DefaultToolchainConfig(), result.Config)
		store.AssertExpectations(t)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Exists").Return(true)
		store.On("GetPath").Return("/project/toolchain.toml")

		_, err := usecase.NewInitManifest(runtimeCfg, store, nil).Run(ctx, usecase.InitManifestParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--force")
	})

	t.Run("uses prompted values in the requested format", func(t *testing.T) {
		prompted := config.DefaultToolchainConfig()
		prompted.Solidity.Version = "0.8.24"
		prompted.Solidity.Settings.Optimizer.Runs = 10000

		store := new(MockManifestStore)
		store.On("Exists").Return(true)
		store.On("GetPath").Return("/project/toolchain.toml")
		store.On("Write", ctx, "/project/toolchain.yaml", prompted, config.FormatYAML).Return(nil)

		prompter := new(MockManifestPrompter)
		prompter.On("PromptManifest", ctx, config.DefaultToolchainConfig()).Return(prompted, nil)

		result, err := usecase.NewInitManifest(runtimeCfg, store, prompter).Run(ctx, usecase.InitManifestParams{
			Format:      config.FormatYAML,
			Force:       true,
			Interactive: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "/project/toolchain.yaml", result.Path)
		assert.True(t, result.Overwritten)
		assert.Equal(t, "0.8.24", result.Config.CompilerVersion())
		prompter.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("prompt failure aborts", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Exists").Return(false)
		prompter := new(MockManifestPrompter)
		prompter.On("PromptManifest", ctx, mock.Anything).Return(nil, errors.New("^C"))

		_, err := usecase.NewInitManifest(runtimeCfg, store, prompter).Run(ctx, usecase.InitManifestParams{Interactive: true})
		assert.Error(t, err)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

}

func TestResolveCompiler(t *testing.T) {
	ctx := context.Background()

	t.Run("reports configured compiler without resolving", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)
		resolver := new(MockCompilerResolver)

		result, err := usecase.NewResolveCompiler(store, resolver, usecase.NopProgress{}).Run(ctx, usecase.ResolveCompilerParams{})
		require.NoError(t, err)

		assert.Equal(t, "0.8.19", result.Version)
		assert.True(t, result.OptimizerEnabled)
		assert.Equal(t, uint64(200), result.OptimizerRuns)
		assert.Nil(t, result.Release)
		resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("resolves the release", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)
		release := &domain.CompilerRelease{
			Version:     "0.8.19",
			LongVersion: "0.8.19+commit.7dd6d404",
			Path:        "solc-linux-amd64-v0.8.19+commit.7dd6d404",
			Platform:    "linux-amd64",
		}
		resolver := new(MockCompilerResolver)
		resolver.On("Resolve", ctx, "0.8.19").Return(release, nil)
		progress := &recordingProgress{}

		result, err := usecase.NewResolveCompiler(store, resolver, progress).Run(ctx, usecase.ResolveCompilerParams{Resolve: true})
		require.NoError(t, err)

		assert.Equal(t, release, result.Release)
		require.Len(t, progress.events, 2)
		assert.True(t, progress.events[0].Spinner)
		assert.True(t, progress.events[1].Done)
	})

	t.Run("unresolvable version fails", func(t *testing.T) {
		store := new(MockManifestStore)
		store.On("Load", ctx).Return(loadedManifest(config.DefaultToolchainConfig()), nil)
		resolver := new(MockCompilerResolver)
		resolver.On("Resolve", ctx, "0.8.19").Return(nil, domain.ErrCompilerNotFound)

		_, err := usecase.NewResolveCompiler(store, resolver, usecase.NopProgress{}).Run(ctx, usecase.ResolveCompilerParams{Resolve: true})
		assert.ErrorIs(t, err, domain.ErrCompilerNotFound)
	})
}

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	cfg := config.DefaultToolchainConfig()
	cfg.Networks["sepolia"] = config.NetworkConfig{URL: "https://rpc.sepolia.org", ChainID: 11155111}
	cfg.Networks["localhost"] = config.NetworkConfig{URL: "http://127.0.0.1:8545", ChainID: 31337}

	store := new(MockManifestStore)
	store.On("Load", ctx).Return(loadedManifest(cfg), nil)

	result, err := usecase.NewListNetworks(&config.RuntimeConfig{Network: "sepolia"}, store).Run(ctx)
	require.NoError(t, err)

	require.Len(t, result.Networks, 3)
	assert.Equal(t, "sepolia", result.Selected)

	assert.Equal(t, "hardhat", result.Networks[0].Name)
	assert.True(t, result.Networks[0].Local)
	assert.True(t, result.Networks[0].AllowUnlimitedContractSize)

	assert.Equal(t, "localhost", result.Networks[1].Name)
	assert.True(t, result.Networks[1].Local)

	assert.Equal(t, "sepolia", result.Networks[2].Name)
	assert.False(t, result.Networks[2].Local)
	assert.Equal(t, uint64(11155111), result.Networks[2].ChainID)
}
