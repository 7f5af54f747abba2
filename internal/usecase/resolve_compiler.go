package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/treb-toolchain/internal/domain"
)

// ResolveCompilerParams contains parameters for resolving the compiler
type ResolveCompilerParams struct {
	Resolve bool // look the version up in the published release list
}

// ResolveCompilerResult contains the configured compiler and, when resolved, its release
type ResolveCompilerResult struct {
	Version          string
	OptimizerEnabled bool
	OptimizerRuns    uint64
	EVMVersion       string
	Release          *domain.CompilerRelease
}

// ResolveCompiler is a use case for reporting which compiler the manifest selects
type ResolveCompiler struct {
	store    ManifestStore
	resolver CompilerResolver
	progress ProgressSink
}

// NewResolveCompiler creates a new ResolveCompiler use case
func NewResolveCompiler(store ManifestStore, resolver CompilerResolver, progress ProgressSink) *ResolveCompiler {
	return &ResolveCompiler{
		store:    store,
		resolver: resolver,
		progress: progress,
	}
}

// Run executes the resolve compiler use case
func (uc *ResolveCompiler) Run(ctx context.Context, params ResolveCompilerParams) (*ResolveCompilerResult, error) {
	manifest, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	solidity := manifest.Config.Solidity
	result := &ResolveCompilerResult{
		Version:          solidity.Version,
		OptimizerEnabled: solidity.Settings.Optimizer.Enabled,
		OptimizerRuns:    solidity.Settings.Optimizer.Runs,
		EVMVersion:       solidity.Settings.EVMVersion,
	}

	if !params.Resolve {
		return result, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "resolve",
		Message: fmt.Sprintf("Resolving solc %s", solidity.Version),
		Spinner: true,
	})
	release, err := uc.resolver.Resolve(ctx, solidity.Version)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "resolve", Done: true})
	if err != nil {
		return nil, err
	}

	result.Release = release
	return result, nil
}
