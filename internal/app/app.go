package app

import (
	"log/slog"

	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Manifest use cases
	ShowManifest     *usecase.ShowManifest
	ValidateManifest *usecase.ValidateManifest
	ExportManifest   *usecase.ExportManifest
	InitManifest     *usecase.InitManifest

	// Toolchain use cases
	ResolveCompiler    *usecase.ResolveCompiler
	ListNetworks       *usecase.ListNetworks
	CheckContractSizes *usecase.CheckContractSizes

	// Local config use cases
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	showManifest *usecase.ShowManifest,
	validateManifest *usecase.ValidateManifest,
	exportManifest *usecase.ExportManifest,
	initManifest *usecase.InitManifest,
	resolveCompiler *usecase.ResolveCompiler,
	listNetworks *usecase.ListNetworks,
	checkContractSizes *usecase.CheckContractSizes,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:             cfg,
		Log:                log,
		ShowManifest:       showManifest,
		ValidateManifest:   validateManifest,
		ExportManifest:     exportManifest,
		InitManifest:       initManifest,
		ResolveCompiler:    resolveCompiler,
		ListNetworks:       listNetworks,
		CheckContractSizes: checkContractSizes,
		ShowConfig:         showConfig,
		SetConfig:          setConfig,
		RemoveConfig:       removeConfig,
	}, nil
}
