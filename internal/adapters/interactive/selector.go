package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	internalconfig "github.com/trebuchet-org/treb-toolchain/internal/config"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork asks the user to pick one of the configured network profiles
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no networks provided for selection")
	}
	if len(names) == 1 {
		return names[0], nil
	}
	if s.config.NonInteractive {
		return "", fmt.Errorf("multiple networks configured (%s), pass --network in non-interactive mode", strings.Join(names, ", "))
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     "Select network",
		Items:     formatNetworkOptions(names),
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(names),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return names[index], nil
}

// formatNetworkOptions marks local test networks in the option list
func formatNetworkOptions(names []string) []string {
	options := make([]string, len(names))
	for i, name := range names {
		if internalconfig.IsLocalNetwork(name, config.NetworkConfig{}) {
			options[i] = fmt.Sprintf("%s %s", name, color.New(color.FgYellow).Sprint("[local]"))
			continue
		}
		options[i] = name
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
