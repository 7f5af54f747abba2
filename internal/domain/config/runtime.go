package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	ManifestPath string

	// Context settings
	Network   string // selected network profile, empty if not specified
	Artifacts string // compiled artifacts directory, relative to ProjectRoot

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Compiler release list
	ReleaseListURL string
	Platform       string
}

// LoadedManifest is a validated manifest together with where it came from
type LoadedManifest struct {
	Config   *ToolchainConfig
	Path     string
	Format   Format
	Warnings []string
}
