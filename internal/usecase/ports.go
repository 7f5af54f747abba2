package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// ManifestStore handles persistence of the toolchain manifest
type ManifestStore interface {
	Exists() bool
	GetPath() string
	Load(ctx context.Context) (*config.LoadedManifest, error)
	Write(ctx context.Context, path string, cfg *config.ToolchainConfig, format config.Format) error
}

// LocalConfigStore handles persistence of local defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// CompilerResolver finds the published compiler build for a version
type CompilerResolver interface {
	Resolve(ctx context.Context, version string) (*domain.CompilerRelease, error)
}

// ArtifactReader reads compiled contracts from a build output directory
type ArtifactReader interface {
	ReadArtifacts(ctx context.Context, dir string) ([]*domain.ContractArtifact, error)
}

// NetworkSelector lets the user pick a network profile
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string) (string, error)
}

// ManifestPrompter asks the user for manifest values, starting from defaults
type ManifestPrompter interface {
	PromptManifest(ctx context.Context, defaults *config.ToolchainConfig) (*config.ToolchainConfig, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
	Done    bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
