package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store    LocalConfigStore
	manifest ManifestStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigStore, manifest ManifestStore) *SetConfig {
	return &SetConfig{
		store:    store,
		manifest: manifest,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	// Normalize key to lowercase
	key := strings.ToLower(params.Key)

	// Validate key
	if !config.IsValidConfigKey(key) {
		validKeys := []string{}
		for _, k := range config.ValidConfigKeys() {
			if k == config.ConfigKeyNetwork {
				validKeys = append(validKeys, string(k)+" (net)")
			} else {
				validKeys = append(validKeys, string(k))
			}
		}
		return nil, fmt.Errorf("unknown config key: %s\nAvailable keys: %s", params.Key, strings.Join(validKeys, ", "))
	}

	normalizedKey := config.NormalizeConfigKey(key)

	if normalizedKey == config.ConfigKeyNetwork {
		if err := uc.checkNetwork(ctx, params.Value); err != nil {
			return nil, err
		}
	}

	// Load existing config or create new one
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch normalizedKey {
	case config.ConfigKeyNetwork:
		cfg.Network = params.Value
	case config.ConfigKeyArtifacts:
		cfg.Artifacts = params.Value
	}

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: cfg,
		ConfigPath:    uc.store.GetPath(),
		Key:           normalizedKey,
		Value:         params.Value,
	}, nil
}

// checkNetwork rejects network names the manifest does not define.
// The implicit hardhat network is always accepted.
func (uc *SetConfig) checkNetwork(ctx context.Context, name string) error {
	if name == config.HardhatNetwork {
		return nil
	}

	manifest, err := uc.manifest.Load(ctx)
	if err != nil {
		return fmt.Errorf("cannot check network %q: %w", name, err)
	}

	if _, ok := manifest.Config.Network(name); !ok {
		return domain.UnknownNetworkErr{Name: name, Available: manifest.Config.NetworkNames()}
	}
	return nil
}
