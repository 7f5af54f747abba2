package config

// LocalConfig represents the local trebtc configuration.
// An empty Artifacts means the build output directory is detected.
type LocalConfig struct {
	Network   string `json:"network"`
	Artifacts string `json:"artifacts,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork   ConfigKey = "network"
	ConfigKeyArtifacts ConfigKey = "artifacts"
)

const (
	// DefaultArtifactsDir is where Foundry writes compiled contracts
	DefaultArtifactsDir = "out"
	// HardhatArtifactsDir is where Hardhat writes compiled contracts
	HardhatArtifactsDir = "artifacts"
)

// ArtifactsDirCandidates lists build output directories in lookup order
func ArtifactsDirCandidates() []string {
	return []string{DefaultArtifactsDir, HardhatArtifactsDir}
}

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyArtifacts,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "net" && validKey == ConfigKeyNetwork) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "net" -> "network")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "net" {
		return ConfigKeyNetwork
	}
	return ConfigKey(key)
}
