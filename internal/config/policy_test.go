package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

func TestIsLocalNetwork(t *testing.T) {
	tests := []struct {
		name     string
		network  string
		url      string
		expected bool
	}{
		{"hardhat without url", "hardhat", "", true},
		{"localhost without url", "localhost", "", true},
		{"anvil without url", "anvil", "", true},
		{"loopback ipv4", "devnet", "http://127.0.0.1:8545", true},
		{"loopback ipv6", "devnet", "http://[::1]:8545", true},
		{"localhost host", "devnet", "http://localhost:8545", true},
		{"remote url wins over local name", "hardhat", "https://rpc.example.org", false},
		{"public rpc", "mainnet", "https://eth.llamarpc.com", false},
		{"unknown name without url", "staging", "", false},
		{"loopback without scheme", "devnet", "127.0.0.1:8545", true},
		{"localhost without scheme", "devnet", "localhost:8545", true},
		{"remote host without scheme", "hardhat", "rpc.example.org:8545", false},
		{"url from environment", "devnet", "${TREBTC_TEST_NODE_URL}", true},
	}

	t.Setenv("TREBTC_TEST_NODE_URL", "http://127.0.0.1:8545")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLocalNetwork(tt.network, config.NetworkConfig{URL: tt.url})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCheckPolicy(t *testing.T) {
	t.Run("checked-in manifest has no violations", func(t *testing.T) {
		cfg := config.DefaultToolchainConfig()

		assert.Empty(t, CheckPolicy(cfg))
		assert.True(t, cfg.Networks[config.HardhatNetwork].AllowUnlimitedContractSize)
	})

	t.Run("flags unlimited size on deployable networks only", func(t *testing.T) {
		cfg := config.DefaultToolchainConfig()
		cfg.Networks["sepolia"] = config.NetworkConfig{URL: "https://rpc.sepolia.org", AllowUnlimitedContractSize: true}
		cfg.Networks["mainnet"] = config.NetworkConfig{URL: "https://eth.llamarpc.com"}

		violations := CheckPolicy(cfg)
		require.Len(t, violations, 1)
		assert.Equal(t, "sepolia", violations[0].Network)
		assert.Equal(t, "allowUnlimitedContractSize", violations[0].Setting)
		assert.True(t, errors.Is(violations[0], domain.ErrUnlimitedSizeOnDeployable))
	})

	t.Run("hardhat node addressed as host and port stays local", func(t *testing.T) {
		cfg := config.DefaultToolchainConfig()
		cfg.Networks[config.HardhatNetwork] = config.NetworkConfig{URL: "127.0.0.1:8545", AllowUnlimitedContractSize: true}

		assert.Empty(t, CheckPolicy(cfg))
	})
}
