package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config       *config.LocalConfig
	ConfigPath   string
	Exists       bool
	ManifestPath string
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store    LocalConfigStore
	manifest ManifestStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigStore, manifest ManifestStore) *ShowConfig {
	return &ShowConfig{
		store:    store,
		manifest: manifest,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:       cfg,
		ConfigPath:   uc.store.GetPath(),
		Exists:       exists,
		ManifestPath: uc.manifest.GetPath(),
	}, nil
}
