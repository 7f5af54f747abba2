//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-toolchain/internal/adapters"
	"github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/logging"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowManifest,
		usecase.NewValidateManifest,
		usecase.NewExportManifest,
		usecase.NewInitManifest,
		usecase.NewResolveCompiler,
		usecase.NewListNetworks,
		usecase.NewCheckContractSizes,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
