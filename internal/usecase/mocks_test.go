package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// MockManifestStore is a mock implementation of ManifestStore
type MockManifestStore struct {
	mock.Mock
}

func (m *MockManifestStore) Exists() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockManifestStore) GetPath() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockManifestStore) Load(ctx context.Context) (*config.LoadedManifest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LoadedManifest), args.Error(1)
}

func (m *MockManifestStore) Write(ctx context.Context, path string, cfg *config.ToolchainConfig, format config.Format) error {
	args := m.Called(ctx, path, cfg, format)
	return args.Error(0)
}

// MockLocalConfigStore is a mock implementation of LocalConfigStore
type MockLocalConfigStore struct {
	mock.Mock
}

func (m *MockLocalConfigStore) Exists() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockLocalConfigStore) GetPath() string {
	args := m.Called()
	return args.String(0)
}

// MockCompilerResolver is a mock implementation of CompilerResolver
type MockCompilerResolver struct {
	mock.Mock
}

func (m *MockCompilerResolver) Resolve(ctx context.Context, version string) (*domain.CompilerRelease, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompilerRelease), args.Error(1)
}

// MockArtifactReader is a mock implementation of ArtifactReader
type MockArtifactReader struct {
	mock.Mock
}

func (m *MockArtifactReader) ReadArtifacts(ctx context.Context, dir string) ([]*domain.ContractArtifact, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContractArtifact), args.Error(1)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, names []string) (string, error) {
	args := m.Called(ctx, names)
	return args.String(0), args.Error(1)
}

// MockManifestPrompter is a mock implementation of ManifestPrompter
type MockManifestPrompter struct {
	mock.Mock
}

func (m *MockManifestPrompter) PromptManifest(ctx context.Context, defaults *config.ToolchainConfig) (*config.ToolchainConfig, error) {
	args := m.Called(ctx, defaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.ToolchainConfig), args.Error(1)
}

// recordingProgress collects progress events
type recordingProgress struct {
	events []usecase.ProgressEvent
}

func (r *recordingProgress) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	r.events = append(r.events, event)
}
func (r *recordingProgress) Info(string)  {}
func (r *recordingProgress) Error(string) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadedManifest(cfg *config.ToolchainConfig) *config.LoadedManifest {
	return &config.LoadedManifest{
		Config: cfg,
		Path:   "/project/toolchain.toml",
		Format: config.FormatTOML,
	}
}
