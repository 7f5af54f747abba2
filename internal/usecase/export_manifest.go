package usecase

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
)

// ExportManifestParams contains parameters for exporting the manifest
type ExportManifestParams struct {
	Format     config.Format
	OutputPath string // empty writes to the result only
}

// ExportManifestResult contains the re-serialized manifest
type ExportManifestResult struct {
	Format     config.Format
	Content    []byte
	SourcePath string
	OutputPath string
}

// ExportManifest is a use case for converting the manifest between formats
type ExportManifest struct {
	store ManifestStore
}

// NewExportManifest creates a new ExportManifest use case
func NewExportManifest(store ManifestStore) *ExportManifest {
	return &ExportManifest{
		store: store,
	}
}

// Run executes the export manifest use case
func (uc *ExportManifest) Run(ctx context.Context, params ExportManifestParams) (*ExportManifestResult, error) {
	manifest, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	format := params.Format
	if format == "" {
		format = manifest.Format
	}

	result := &ExportManifestResult{
		Format:     format,
		SourcePath: manifest.Path,
		OutputPath: params.OutputPath,
	}

	if params.OutputPath != "" {
		if samePath(params.OutputPath, manifest.Path) {
			return nil, fmt.Errorf("refusing to overwrite the source manifest %s", manifest.Path)
		}
		if err := uc.store.Write(ctx, params.OutputPath, manifest.Config, format); err != nil {
			return nil, err
		}
		return result, nil
	}

	var buf bytes.Buffer
	if err := internalconfig.EncodeManifest(&buf, manifest.Config, format); err != nil {
		return nil, err
	}
	result.Content = buf.Bytes()
	return result, nil
}

// samePath reports whether two paths name the same file, however they are spelled
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
