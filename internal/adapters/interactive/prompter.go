package interactive

import (
	"context"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	internalconfig "github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// PrompterAdapter asks for manifest values on the terminal
type PrompterAdapter struct{}

// NewPrompterAdapter creates a new prompter adapter
func NewPrompterAdapter() *PrompterAdapter {
	return &PrompterAdapter{}
}

// PromptManifest asks for the compiler version and optimizer settings.
// Networks are kept from defaults.
func (p *PrompterAdapter) PromptManifest(ctx context.Context, defaults *config.ToolchainConfig) (*config.ToolchainConfig, error) {
	result := *defaults
	result.Networks = make(map[string]config.NetworkConfig, len(defaults.Networks))
	for name, network := range defaults.Networks {
		result.Networks[name] = network
	}

	versionPrompt := promptui.Prompt{
		Label:    "Solidity compiler version",
		Default:  defaults.Solidity.Version,
		Validate: internalconfig.ValidateCompilerVersion,
	}
	version, err := versionPrompt.Run()
	if err != nil {
		return nil, err
	}
	result.Solidity.Version = version

	enablePrompt := promptui.Select{
		Label: "Enable the optimizer",
		Items: []string{"yes", "no"},
	}
	if !defaults.Solidity.Settings.Optimizer.Enabled {
		enablePrompt.CursorPos = 1
	}
	_, enabled, err := enablePrompt.Run()
	if err != nil {
		return nil, err
	}
	result.Solidity.Settings.Optimizer.Enabled = enabled == "yes"

	if result.Solidity.Settings.Optimizer.Enabled {
		runsPrompt := promptui.Prompt{
			Label:    "Optimizer runs",
			Default:  strconv.FormatUint(defaults.Solidity.Settings.Optimizer.Runs, 10),
			Validate: validateRuns,
		}
		raw, err := runsPrompt.Run()
		if err != nil {
			return nil, err
		}
		runs, _ := strconv.ParseUint(raw, 10, 32)
		result.Solidity.Settings.Optimizer.Runs = runs
	}

	return &result, nil
}

func validateRuns(input string) error {
	if _, err := strconv.ParseUint(input, 10, 32); err != nil {
		return fmt.Errorf("runs must be an integer between 0 and %d", config.MaxOptimizerRuns)
	}
	return nil
}

var _ usecase.ManifestPrompter = (*PrompterAdapter)(nil)
