package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// RemoveConfigParams contains parameters for removing configuration
type RemoveConfigParams struct {
	Key string
}

// RemoveConfigResult contains the result of removing configuration
type RemoveConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
}

// RemoveConfig is a use case for removing configuration values
type RemoveConfig struct {
	store LocalConfigStore
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(store LocalConfigStore) *RemoveConfig {
	return &RemoveConfig{
		store: store,
	}
}

// Run executes the remove config use case
func (uc *RemoveConfig) Run(ctx context.Context, params RemoveConfigParams) (*RemoveConfigResult, error) {
	key := strings.ToLower(params.Key)

	if !config.IsValidConfigKey(key) {
		keys := make([]string, 0, len(config.ValidConfigKeys()))
		for _, k := range config.ValidConfigKeys() {
			keys = append(keys, string(k))
		}
		return nil, fmt.Errorf("unknown config key: %s\nAvailable keys: %s", params.Key, strings.Join(keys, ", "))
	}

	normalizedKey := config.NormalizeConfigKey(key)

	if !uc.store.Exists() {
		return nil, fmt.Errorf("no config file found at %s", uc.store.GetPath())
	}

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	defaults := config.DefaultLocalConfig()
	switch normalizedKey {
	case config.ConfigKeyNetwork:
		cfg.Network = defaults.Network
	case config.ConfigKeyArtifacts:
		cfg.Artifacts = defaults.Artifacts
	}

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &RemoveConfigResult{
		UpdatedConfig: cfg,
		ConfigPath:    uc.store.GetPath(),
		Key:           normalizedKey,
	}, nil
}
