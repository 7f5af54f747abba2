package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// ManifestStoreAdapter reads and writes the toolchain manifest on disk
type ManifestStoreAdapter struct {
	path string
}

// NewManifestStoreAdapter creates a store for the manifest selected by the runtime config
func NewManifestStoreAdapter(cfg *config.RuntimeConfig) *ManifestStoreAdapter {
	return &ManifestStoreAdapter{path: cfg.ManifestPath}
}

// Exists checks if the manifest file exists
func (s *ManifestStoreAdapter) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// GetPath returns the manifest path
func (s *ManifestStoreAdapter) GetPath() string {
	return s.path
}

// Load reads and validates the manifest
func (s *ManifestStoreAdapter) Load(ctx context.Context) (*config.LoadedManifest, error) {
	return internalconfig.LoadManifest(s.path)
}

// Write validates cfg and writes it to path in the given format.
// Nothing is written when validation fails.
func (s *ManifestStoreAdapter) Write(ctx context.Context, path string, cfg *config.ToolchainConfig, format config.Format) error {
	if err := internalconfig.Validate(cfg); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := internalconfig.EncodeManifest(&buf, cfg, format); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

var _ usecase.ManifestStore = (*ManifestStoreAdapter)(nil)
