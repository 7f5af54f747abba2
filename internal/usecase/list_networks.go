package usecase

import (
	"context"

	"github.com/samber/lo"
	internalconfig "github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Selected string
}

// NetworkStatus represents a configured network profile
type NetworkStatus struct {
	Name                       string
	ChainID                    uint64
	URL                        string
	Local                      bool
	AllowUnlimitedContractSize bool
}

// ListNetworks is a use case for listing configured network profiles
type ListNetworks struct {
	cfg   *config.RuntimeConfig
	store ManifestStore
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, store ManifestStore) *ListNetworks {
	return &ListNetworks{
		cfg:   cfg,
		store: store,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	manifest, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	manifestCfg := manifest.Config
	networks := lo.Map(manifestCfg.NetworkNames(), func(name string, _ int) NetworkStatus {
		network := manifestCfg.Networks[name]
		return NetworkStatus{
			Name:                       name,
			ChainID:                    network.ChainID,
			URL:                        network.URL,
			Local:                      internalconfig.IsLocalNetwork(name, network),
			AllowUnlimitedContractSize: network.AllowUnlimitedContractSize,
		}
	})

	return &ListNetworksResult{
		Networks: networks,
		Selected: uc.cfg.Network,
	}, nil
}
