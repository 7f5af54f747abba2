package config

import (
	"sort"
)

const (
	// DefaultCompilerVersion is the solc release the checked-in manifest pins.
	DefaultCompilerVersion = "0.8.19"
	// DefaultOptimizerRuns favours deployment cost over per-call gas.
	DefaultOptimizerRuns uint64 = 200
	// MaxOptimizerRuns is the largest value solc accepts for --optimize-runs.
	MaxOptimizerRuns uint64 = 1<<32 - 1

	// HardhatNetwork is the in-process test network every manifest may configure.
	HardhatNetwork = "hardhat"
)

// ToolchainConfig is the complete toolchain manifest.
// It is built once by the loader and treated as read-only afterwards.
type ToolchainConfig struct {
	Solidity SolidityConfig           `toml:"solidity" yaml:"solidity" json:"solidity" mapstructure:"solidity"`
	Networks map[string]NetworkConfig `toml:"networks" yaml:"networks" json:"networks" mapstructure:"networks"`
}

// SolidityConfig selects the compiler and the settings passed to it
type SolidityConfig struct {
	Version  string           `toml:"version" yaml:"version" json:"version" mapstructure:"version"`
	Settings CompilerSettings `toml:"settings" yaml:"settings" json:"settings" mapstructure:"settings"`
}

// CompilerSettings are handed to the compiler as-is
type CompilerSettings struct {
	Optimizer  OptimizerConfig `toml:"optimizer" yaml:"optimizer" json:"optimizer" mapstructure:"optimizer"`
	EVMVersion string          `toml:"evmVersion,omitempty" yaml:"evmVersion,omitempty" json:"evmVersion,omitempty" mapstructure:"evmVersion"`
}

// OptimizerConfig trades bytecode size against runtime gas cost.
// Higher Runs means cheaper calls and a larger deployment.
type OptimizerConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Runs    uint64 `toml:"runs" yaml:"runs" json:"runs" mapstructure:"runs"`
}

// NetworkConfig is a named execution environment
type NetworkConfig struct {
	// AllowUnlimitedContractSize disables the EIP-170 code size limit. Local testing only.
	AllowUnlimitedContractSize bool   `toml:"allowUnlimitedContractSize" yaml:"allowUnlimitedContractSize" json:"allowUnlimitedContractSize" mapstructure:"allowUnlimitedContractSize"`
	ChainID                    uint64 `toml:"chainId,omitempty,omitzero" yaml:"chainId,omitempty" json:"chainId,omitempty" mapstructure:"chainId"`
	URL                        string `toml:"url,omitempty" yaml:"url,omitempty" json:"url,omitempty" mapstructure:"url"`
}

// DefaultToolchainConfig returns the checked-in manifest
func DefaultToolchainConfig() *ToolchainConfig {
	return &ToolchainConfig{
		Solidity: SolidityConfig{
			Version: DefaultCompilerVersion,
			Settings: CompilerSettings{
				Optimizer: OptimizerConfig{
					Enabled: true,
					Runs:    DefaultOptimizerRuns,
				},
			},
		},
		Networks: map[string]NetworkConfig{
			HardhatNetwork: {
				AllowUnlimitedContractSize: true,
			},
		},
	}
}

// CompilerVersion returns the configured solc version
func (c *ToolchainConfig) CompilerVersion() string {
	return c.Solidity.Version
}

// Network looks up a network profile by name
func (c *ToolchainConfig) Network(name string) (NetworkConfig, bool) {
	n, ok := c.Networks[name]
	return n, ok
}

// NetworkNames returns the configured network names in sorted order
func (c *ToolchainConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
