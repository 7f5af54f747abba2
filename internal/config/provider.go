package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

const (
	// DataDirName holds local state relative to the project root
	DataDirName = ".trebtc"
	// DefaultReleaseListURL serves the official solc builds
	DefaultReleaseListURL = "https://binaries.soliditylang.org"
	// DefaultTimeout bounds a whole command, including release list downloads
	DefaultTimeout = time.Minute
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	manifestPath, err := resolveManifestPath(projectRoot, v.GetString("manifest"))
	if err != nil {
		return nil, err
	}

	platform := v.GetString("platform")
	if platform == "" {
		platform = DefaultPlatform()
	}

	artifacts := v.GetString("artifacts")
	if artifacts == "" {
		artifacts = DetectArtifactsDir(projectRoot)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		ManifestPath:   manifestPath,
		Network:        v.GetString("network"),
		Artifacts:      artifacts,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ReleaseListURL: strings.TrimSuffix(v.GetString("release_list_url"), "/"),
		Platform:       platform,
	}

	return cfg, nil
}

// DetectArtifactsDir returns the first build output directory present under
// projectRoot, out/ for Foundry then artifacts/ for Hardhat. It falls back to out.
func DetectArtifactsDir(projectRoot string) string {
	for _, candidate := range config.ArtifactsDirCandidates() {
		if info, err := os.Stat(filepath.Join(projectRoot, candidate)); err == nil && info.IsDir() {
			return candidate
		}
	}
	return config.DefaultArtifactsDir
}

// resolveManifestPath returns the explicit manifest if one was given,
// otherwise the first manifest found in the project root
func resolveManifestPath(projectRoot, explicit string) (string, error) {
	if explicit != "" {
		if filepath.IsAbs(explicit) {
			return explicit, nil
		}
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("failed to resolve manifest path: %w", err)
		}
		return abs, nil
	}

	if path, ok := findManifestIn(projectRoot); ok {
		return path, nil
	}
	return filepath.Join(projectRoot, config.ManifestFileNames()[0]), nil
}

// FindProjectRoot walks up from current directory to find a toolchain manifest
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, ok := findManifestIn(dir); ok {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding a manifest
			return "", fmt.Errorf("%w: no %s in this directory or any parent", domain.ErrManifestNotFound, strings.Join(config.ManifestFileNames(), ", "))
		}
		dir = parent
	}
}

func findManifestIn(dir string) (string, bool) {
	for _, name := range config.ManifestFileNames() {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// DefaultPlatform maps the running OS to the solc release list directory
func DefaultPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "macosx-amd64"
	case "windows":
		return "windows-amd64"
	default:
		return "linux-amd64"
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix("TREBTC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("release_list_url", DefaultReleaseListURL)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
