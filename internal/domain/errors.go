package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for manifest operations
var (
	// ErrManifestNotFound is returned when no manifest exists at or above the working directory
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrInvalidManifest is returned when the manifest cannot be decoded into its schema
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrInvalidCompilerVersion is returned when the compiler version is not a full semantic version
	ErrInvalidCompilerVersion = errors.New("invalid compiler version")

	// ErrOptimizerRunsOutOfRange is returned when optimizer runs is negative, fractional or above uint32
	ErrOptimizerRunsOutOfRange = errors.New("optimizer runs out of range")

	// ErrUnlimitedSizeOnDeployable is returned when a deployable network disables the code size limit
	ErrUnlimitedSizeOnDeployable = errors.New("unlimited contract size on deployable network")

	// ErrNetworkNotFound is returned when a network profile is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrCompilerNotFound is returned when no compiler release matches the configured version
	ErrCompilerNotFound = errors.New("compiler release not found")

	// ErrContractTooLarge is returned when compiled contracts exceed the size limits
	ErrContractTooLarge = errors.New("contract code size exceeds limit")
)

// PolicyViolation describes a manifest setting that is legal to parse but unsafe to use
type PolicyViolation struct {
	Network string
	Setting string
	Reason  string
}

func (v PolicyViolation) Error() string {
	return fmt.Sprintf("network %q: %s: %s", v.Network, v.Setting, v.Reason)
}

func (v PolicyViolation) Unwrap() error {
	return ErrUnlimitedSizeOnDeployable
}

// UnknownNetworkErr is returned when a command targets a network the manifest does not define
type UnknownNetworkErr struct {
	Name      string
	Available []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("network %q not found: manifest defines no networks", e.Name)
	}
	return fmt.Sprintf("network %q not found, available networks: %s", e.Name, strings.Join(e.Available, ", "))
}

func (e UnknownNetworkErr) Unwrap() error {
	return ErrNetworkNotFound
}
