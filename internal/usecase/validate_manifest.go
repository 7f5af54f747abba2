package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
)

// ValidateManifestResult contains the outcome of validating the manifest
type ValidateManifestResult struct {
	Path            string
	Valid           bool
	CompilerVersion string
	Errors          []string
	Violations      []domain.PolicyViolation
	Warnings        []string
}

// ValidateManifest is a use case for checking the manifest without using it
type ValidateManifest struct {
	store ManifestStore
	log   *slog.Logger
}

// NewValidateManifest creates a new ValidateManifest use case
func NewValidateManifest(store ManifestStore, log *slog.Logger) *ValidateManifest {
	return &ValidateManifest{
		store: store,
		log:   log,
	}
}

// Run loads the manifest and reports every problem found.
// Only a missing manifest is returned as an error; validation failures are part of the result.
func (uc *ValidateManifest) Run(ctx context.Context) (*ValidateManifestResult, error) {
	result := &ValidateManifestResult{Path: uc.store.GetPath()}

	manifest, err := uc.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrManifestNotFound) {
			return nil, err
		}

		for _, e := range flattenErrors(err) {
			var violation domain.PolicyViolation
			if errors.As(e, &violation) {
				result.Violations = append(result.Violations, violation)
				continue
			}
			result.Errors = append(result.Errors, e.Error())
		}
		uc.log.Debug("manifest rejected", "path", result.Path, "errors", len(result.Errors), "violations", len(result.Violations))
		return result, nil
	}

	result.Valid = true
	result.Path = manifest.Path
	result.CompilerVersion = manifest.Config.CompilerVersion()
	result.Warnings = manifest.Warnings
	return result, nil
}

// flattenErrors unpacks aggregated validation errors
func flattenErrors(err error) []error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return lo.Filter(merr.Errors, func(e error, _ int) bool { return e != nil })
	}
	return []error{err}
}
