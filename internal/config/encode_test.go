package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

func TestEncodeManifestRoundTrip(t *testing.T) {
	cfg := config.DefaultToolchainConfig()
	cfg.Solidity.Settings.EVMVersion = "paris"
	cfg.Networks["sepolia"] = config.NetworkConfig{
		ChainID: 11155111,
		URL:     "https://rpc.sepolia.org",
	}

	for _, format := range []config.Format{config.FormatTOML, config.FormatYAML, config.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeManifest(&buf, cfg, format))

			loaded, err := DecodeManifest(bytes.NewReader(buf.Bytes()), format)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded.Config)
			assert.Empty(t, loaded.Warnings)

			// Encoding the decoded manifest again is byte-for-byte stable
			var again bytes.Buffer
			require.NoError(t, EncodeManifest(&again, loaded.Config, format))
			assert.Equal(t, buf.String(), again.String())
		})
	}
}

func TestEncodeManifestTOMLShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeManifest(&buf, config.DefaultToolchainConfig(), config.FormatTOML))

	out := buf.String()
	assert.Contains(t, out, `version = "0.8.19"`)
	assert.Contains(t, out, "runs = 200")
	assert.Contains(t, out, "[networks.hardhat]")
	assert.Contains(t, out, "allowUnlimitedContractSize = true")
	assert.NotContains(t, out, "chainId")
}

func TestEncodeManifestOmitsUnsetChainID(t *testing.T) {
	cfg := config.DefaultToolchainConfig()
	cfg.Networks["sepolia"] = config.NetworkConfig{URL: "https://rpc.sepolia.org"}

	for _, format := range []config.Format{config.FormatTOML, config.FormatYAML, config.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeManifest(&buf, cfg, format))

			assert.Contains(t, buf.String(), "https://rpc.sepolia.org")
			assert.NotContains(t, buf.String(), "chainId")
		})
	}
}

func TestEncodeManifestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeManifest(&buf, config.DefaultToolchainConfig(), config.Format("ini"))
	assert.Error(t, err)
}
