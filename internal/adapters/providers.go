package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/treb-toolchain/internal/adapters/artifacts"
	"github.com/trebuchet-org/treb-toolchain/internal/adapters/compiler"
	"github.com/trebuchet-org/treb-toolchain/internal/adapters/fs"
	"github.com/trebuchet-org/treb-toolchain/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewManifestStoreAdapter,
	wire.Bind(new(usecase.ManifestStore), new(*fs.ManifestStoreAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// CompilerSet provides the solc release lookup
var CompilerSet = wire.NewSet(
	compiler.NewReleaseResolverAdapter,
	wire.Bind(new(usecase.CompilerResolver), new(*compiler.ReleaseResolverAdapter)),
)

// ArtifactsSet provides build output readers
var ArtifactsSet = wire.NewSet(
	artifacts.NewReaderAdapter,
	wire.Bind(new(usecase.ArtifactReader), new(*artifacts.ReaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),

	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.ManifestPrompter), new(*interactive.PrompterAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	CompilerSet,
	ArtifactsSet,
	InteractiveSet,
)
