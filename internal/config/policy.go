package config

import (
	"net"
	"net/url"
	"strings"

	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// localNetworkNames are profiles that never reach a public chain
var localNetworkNames = map[string]bool{
	config.HardhatNetwork: true,
	"localhost":           true,
	"anvil":               true,
}

// IsLocalNetwork reports whether a profile only targets a local test chain.
// A configured URL decides; without one the profile name does.
func IsLocalNetwork(name string, network config.NetworkConfig) bool {
	rawURL := ExpandEnvReferences(network.URL)
	if rawURL == "" {
		return localNetworkNames[name]
	}

	// host:port without a scheme, as hardhat accepts for its node URL
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// CheckPolicy returns the settings that are only acceptable on local test networks
func CheckPolicy(cfg *config.ToolchainConfig) []domain.PolicyViolation {
	var violations []domain.PolicyViolation

	for _, name := range cfg.NetworkNames() {
		network := cfg.Networks[name]
		if network.AllowUnlimitedContractSize && !IsLocalNetwork(name, network) {
			violations = append(violations, domain.PolicyViolation{
				Network: name,
				Setting: "allowUnlimitedContractSize",
				Reason:  "only permitted on local test networks",
			})
		}
	}

	return violations
}
