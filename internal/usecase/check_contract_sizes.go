package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	ethparams "github.com/ethereum/go-ethereum/params"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// CheckContractSizesParams contains parameters for the size check
type CheckContractSizesParams struct {
	Network      string
	ArtifactsDir string
}

// CheckContractSizesResult contains per-contract sizes measured against the selected network
type CheckContractSizesResult struct {
	Network       string
	UnlimitedSize bool
	ArtifactsDir  string
	RuntimeLimit  int
	InitCodeLimit int
	Contracts     []domain.ContractSize
	Oversized     int
	Violations    int
}

// CheckContractSizes is a use case for checking compiled contracts against the EVM code size limits
type CheckContractSizes struct {
	cfg      *config.RuntimeConfig
	store    ManifestStore
	reader   ArtifactReader
	selector NetworkSelector
	log      *slog.Logger
}

// NewCheckContractSizes creates a new CheckContractSizes use case
func NewCheckContractSizes(
	cfg *config.RuntimeConfig,
	store ManifestStore,
	reader ArtifactReader,
	selector NetworkSelector,
	log *slog.Logger,
) *CheckContractSizes {
	return &CheckContractSizes{
		cfg:      cfg,
		store:    store,
		reader:   reader,
		selector: selector,
		log:      log,
	}
}

// Run executes the check contract sizes use case
func (uc *CheckContractSizes) Run(ctx context.Context, params CheckContractSizesParams) (*CheckContractSizesResult, error) {
	manifest, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	networkName, err := uc.selectNetwork(ctx, manifest.Config, params.Network)
	if err != nil {
		return nil, err
	}

	network, ok := manifest.Config.Network(networkName)
	if !ok && networkName != config.HardhatNetwork {
		return nil, domain.UnknownNetworkErr{Name: networkName, Available: manifest.Config.NetworkNames()}
	}

	dir := params.ArtifactsDir
	if dir == "" {
		dir = uc.cfg.Artifacts
	}
	if dir == "" {
		dir = config.DefaultArtifactsDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(uc.cfg.ProjectRoot, dir)
	}

	artifacts, err := uc.reader.ReadArtifacts(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts: %w", err)
	}
	uc.log.Debug("read artifacts", "dir", dir, "count", len(artifacts), "network", networkName)

	result := &CheckContractSizesResult{
		Network:       networkName,
		UnlimitedSize: network.AllowUnlimitedContractSize,
		ArtifactsDir:  dir,
		RuntimeLimit:  ethparams.MaxCodeSize,
		InitCodeLimit: ethparams.MaxInitCodeSize,
		Contracts:     make([]domain.ContractSize, 0, len(artifacts)),
	}

	for _, artifact := range artifacts {
		size := measure(artifact, network.AllowUnlimitedContractSize)
		switch size.Status {
		case domain.SizeStatusAllowed:
			result.Oversized++
		case domain.SizeStatusViolation:
			result.Oversized++
			result.Violations++
		}
		result.Contracts = append(result.Contracts, size)
	}

	sort.SliceStable(result.Contracts, func(i, j int) bool {
		if result.Contracts[i].RuntimeSize != result.Contracts[j].RuntimeSize {
			return result.Contracts[i].RuntimeSize > result.Contracts[j].RuntimeSize
		}
		return result.Contracts[i].Name < result.Contracts[j].Name
	})

	return result, nil
}

func (uc *CheckContractSizes) selectNetwork(ctx context.Context, manifest *config.ToolchainConfig, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if uc.cfg.Network != "" {
		return uc.cfg.Network, nil
	}

	names := manifest.NetworkNames()
	if len(names) > 1 && !uc.cfg.NonInteractive && uc.selector != nil {
		return uc.selector.SelectNetwork(ctx, names)
	}
	return config.HardhatNetwork, nil
}

// measure classifies one contract against EIP-170 (runtime) and EIP-3860 (init code)
func measure(artifact *domain.ContractArtifact, unlimited bool) domain.ContractSize {
	size := domain.ContractSize{
		Name:          artifact.Name,
		SourceName:    artifact.SourceName,
		RuntimeSize:   len(artifact.RuntimeCode),
		InitCodeSize:  len(artifact.InitCode),
		RuntimeMargin: ethparams.MaxCodeSize - len(artifact.RuntimeCode),
		Status:        domain.SizeStatusOK,
	}

	oversized := size.RuntimeSize > ethparams.MaxCodeSize || size.InitCodeSize > ethparams.MaxInitCodeSize
	switch {
	case oversized && unlimited:
		size.Status = domain.SizeStatusAllowed
	case oversized:
		size.Status = domain.SizeStatusViolation
	}
	return size
}
