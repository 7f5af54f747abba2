package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// InitManifestParams contains parameters for creating a manifest
type InitManifestParams struct {
	Format      config.Format
	Force       bool
	Interactive bool
}

// InitManifestResult contains the result of creating a manifest
type InitManifestResult struct {
	Path        string
	Config      *config.ToolchainConfig
	Overwritten bool
}

// InitManifest is a use case for writing a new manifest with the default settings
type InitManifest struct {
	cfg      *config.RuntimeConfig
	store    ManifestStore
	prompter ManifestPrompter
}

// NewInitManifest creates a new InitManifest use case
func NewInitManifest(cfg *config.RuntimeConfig, store ManifestStore, prompter ManifestPrompter) *InitManifest {
	return &InitManifest{
		cfg:      cfg,
		store:    store,
		prompter: prompter,
	}
}

// Run executes the init manifest use case
func (uc *InitManifest) Run(ctx context.Context, params InitManifestParams) (*InitManifestResult, error) {
	format := params.Format
	if format == "" {
		format = config.FormatTOML
	}

	exists := uc.store.Exists()
	if exists && !params.Force {
		return nil, fmt.Errorf("manifest already exists at %s (use --force to overwrite)", uc.store.GetPath())
	}

	manifest := config.DefaultToolchainConfig()
	if params.Interactive && uc.prompter != nil {
		prompted, err := uc.prompter.PromptManifest(ctx, manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest values: %w", err)
		}
		manifest = prompted
	}

	path := uc.store.GetPath()
	if filepath.Ext(path) != format.Extension() {
		path = filepath.Join(uc.cfg.ProjectRoot, config.ManifestBaseName+format.Extension())
	}

	if err := uc.store.Write(ctx, path, manifest, format); err != nil {
		return nil, err
	}

	return &InitManifestResult{
		Path:        path,
		Config:      manifest,
		Overwritten: exists,
	}, nil
}
