package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"golang.org/x/mod/semver"
)

// MinCompilerVersion is the first solc release with standard JSON input
const MinCompilerVersion = "0.4.11"

// Validate checks a decoded manifest and reports every problem it finds
func Validate(cfg *config.ToolchainConfig) error {
	var result *multierror.Error

	if err := ValidateCompilerVersion(cfg.Solidity.Version); err != nil {
		result = multierror.Append(result, err)
	}

	if runs := cfg.Solidity.Settings.Optimizer.Runs; runs > config.MaxOptimizerRuns {
		result = multierror.Append(result, fmt.Errorf("%w: %d is outside [0, %d]", domain.ErrOptimizerRunsOutOfRange, runs, config.MaxOptimizerRuns))
	}

	for _, name := range cfg.NetworkNames() {
		if strings.TrimSpace(name) == "" {
			result = multierror.Append(result, fmt.Errorf("%w: network names must not be empty", domain.ErrInvalidManifest))
		}
	}

	for _, violation := range CheckPolicy(cfg) {
		result = multierror.Append(result, violation)
	}

	if result != nil {
		result.ErrorFormat = formatErrors
	}
	return result.ErrorOrNil()
}

// ValidateCompilerVersion accepts full MAJOR.MINOR.PATCH versions with optional
// pre-release and build suffixes, e.g. 0.8.19 or 0.8.20-nightly.2023.4.10+commit.1a2b3c4d.
func ValidateCompilerVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: solidity.version is required", domain.ErrInvalidCompilerVersion)
	}

	v := "v" + version
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", domain.ErrInvalidCompilerVersion, version)
	}

	core := strings.SplitN(strings.SplitN(version, "+", 2)[0], "-", 2)[0]
	if strings.Count(core, ".") != 2 {
		return fmt.Errorf("%w: %q must specify major, minor and patch", domain.ErrInvalidCompilerVersion, version)
	}

	if semver.Compare(v, "v"+MinCompilerVersion) < 0 {
		return fmt.Errorf("%w: %s is older than the minimum supported %s", domain.ErrInvalidCompilerVersion, version, MinCompilerVersion)
	}

	return nil
}

func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "  - "+err.Error())
	}
	return fmt.Sprintf("%d manifest errors:\n%s", len(errs), strings.Join(lines, "\n"))
}
