package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

const localConfigPath = "/project/.trebtc/config.local.json"

func TestShowConfig(t *testing.T) {
	ctx := context.Background()

	store := new(MockLocalConfigStore)
	store.On("Exists").Return(false)
	store.On("Load", ctx).Return(config.DefaultLocalConfig(), nil)
	store.On("GetPath").Return(localConfigPath)
	manifest := new(MockManifestStore)
	manifest.On("GetPath").Return("/project/toolchain.toml")

	result, err := usecase.NewShowConfig(store, manifest).Run(ctx)
	require.NoError(t, err)

	assert.False(t, result.Exists)
	assert.Empty(t, result.Config.Artifacts)
	assert.Equal(t, localConfigPath, result.ConfigPath)
	assert.Equal(t, "/project/toolchain.toml", result.ManifestPath)
}

func TestSetConfig(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		params    usecase.SetConfigParams
		manifest  *config.ToolchainConfig
		wantKey   config.ConfigKey
		want      *config.LocalConfig
		wantErr   error
		errSubstr string
	}{
		{
			name:     "network alias",
			params:   usecase.SetConfigParams{Key: "net", Value: "sepolia"},
			manifest: manifestWithSepolia(),
			wantKey:  config.ConfigKeyNetwork,
			want:     &config.LocalConfig{Network: "sepolia"},
		},
		{
			name:    "hardhat needs no manifest entry",
			params:  usecase.SetConfigParams{Key: "network", Value: "hardhat"},
			wantKey: config.ConfigKeyNetwork,
			want:    &config.LocalConfig{Network: "hardhat"},
		},
		{
			name:    "artifacts dir",
			params:  usecase.SetConfigParams{Key: "ARTIFACTS", Value: "artifacts"},
			wantKey: config.ConfigKeyArtifacts,
			want:    &config.LocalConfig{Artifacts: "artifacts"},
		},
		{
			name:     "undefined network",
			params:   usecase.SetConfigParams{Key: "network", Value: "mainnet"},
			manifest: manifestWithSepolia(),
			wantErr:  domain.ErrNetworkNotFound,
		},
		{
			name:      "unknown key",
			params:    usecase.SetConfigParams{Key: "namespace", Value: "default"},
			errSubstr: "unknown config key: namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockLocalConfigStore)
			store.On("Load", ctx).Return(config.DefaultLocalConfig(), nil)
			store.On("Save", ctx, mock.Anything).Return(nil)
			store.On("GetPath").Return(localConfigPath)
			manifest := new(MockManifestStore)
			if tt.manifest != nil {
				manifest.On("Load", ctx).Return(loadedManifest(tt.manifest), nil)
			}

			result, err := usecase.NewSetConfig(store, manifest).Run(ctx, tt.params)

			if tt.wantErr != nil || tt.errSubstr != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.errSubstr != "" {
					assert.Contains(t, err.Error(), tt.errSubstr)
				}
				store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, result.Key)
			assert.Equal(t, tt.want, result.UpdatedConfig)
			assert.Equal(t, localConfigPath, result.ConfigPath)
		})
	}
}

func TestRemoveConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("resets the key to its default", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Exists").Return(true)
		store.On("Load", ctx).Return(&config.LocalConfig{Network: "sepolia", Artifacts: "artifacts"}, nil)
		store.On("Save", ctx, &config.LocalConfig{Network: "sepolia"}).Return(nil)
		store.On("GetPath").Return(localConfigPath)

		result, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "artifacts"})
		require.NoError(t, err)

		assert.Equal(t, config.ConfigKeyArtifacts, result.Key)
		assert.Equal(t, "sepolia", result.UpdatedConfig.Network)
		store.AssertExpectations(t)
	})

	t.Run("no config file", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Exists").Return(false)
		store.On("GetPath").Return(localConfigPath)

		_, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "net"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no config file found")
	})

	t.Run("save failure", func(t *testing.T) {
		store := new(MockLocalConfigStore)
		store.On("Exists").Return(true)
		store.On("Load", ctx).Return(config.DefaultLocalConfig(), nil)
		store.On("Save", ctx, mock.Anything).Return(errors.New("read-only file system"))

		_, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "network"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save config")
	})
}
