package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// ShowManifestResult contains the loaded manifest
type ShowManifestResult struct {
	Manifest *config.LoadedManifest
}

// ShowManifest is a use case for displaying the resolved manifest
type ShowManifest struct {
	store ManifestStore
	log   *slog.Logger
}

// NewShowManifest creates a new ShowManifest use case
func NewShowManifest(store ManifestStore, log *slog.Logger) *ShowManifest {
	return &ShowManifest{
		store: store,
		log:   log,
	}
}

// Run executes the show manifest use case
func (uc *ShowManifest) Run(ctx context.Context) (*ShowManifestResult, error) {
	manifest, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, warning := range manifest.Warnings {
		uc.log.Warn(warning, "manifest", manifest.Path)
	}

	return &ShowManifestResult{Manifest: manifest}, nil
}
