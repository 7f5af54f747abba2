package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// LoadManifest reads, decodes and validates the manifest at path.
// .env files next to the manifest are loaded first so network URLs can reference them.
func LoadManifest(path string) (*config.LoadedManifest, error) {
	format, err := config.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	envWarnings := loadEnvFiles(filepath.Dir(path))

	loaded, err := DecodeManifest(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	loaded.Path = path
	loaded.Warnings = append(envWarnings, loaded.Warnings...)

	return loaded, nil
}

// DecodeManifest decodes and validates a manifest without touching the file system.
// Network URLs keep their ${VAR} references; they are expanded where they are used.
func DecodeManifest(r io.Reader, format config.Format) (*config.LoadedManifest, error) {
	tree, err := decodeTree(r, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}

	var problems *multierror.Error
	problems = multierror.Append(problems, normalizeTree(tree))

	cfg, unused, err := decodeToolchainConfig(tree)
	if err != nil {
		problems = multierror.Append(problems, err)
	} else {
		problems = multierror.Append(problems, Validate(cfg))
	}

	if err := problems.ErrorOrNil(); err != nil {
		problems.ErrorFormat = formatErrors
		return nil, err
	}

	warnings := make([]string, 0, len(unused))
	for _, key := range unused {
		warnings = append(warnings, fmt.Sprintf("unrecognized option %q ignored", key))
	}

	return &config.LoadedManifest{
		Config:   cfg,
		Format:   format,
		Warnings: warnings,
	}, nil
}

// decodeTree parses the raw document into a generic tree
func decodeTree(r io.Reader, format config.Format) (map[string]any, error) {
	tree := make(map[string]any)

	switch format {
	case config.FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&tree); err != nil {
			return nil, err
		}
	case config.FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&tree); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case config.FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&tree); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}

	if tree == nil {
		tree = make(map[string]any)
	}
	return tree, nil
}

// normalizeTree rewrites the shapes the decoder cannot take directly:
// the `solidity = "0.8.19"` shorthand and the optimizer runs number, whose
// representation differs between formats.
func normalizeTree(tree map[string]any) error {
	if version, ok := tree["solidity"].(string); ok {
		tree["solidity"] = map[string]any{"version": version}
	}

	optimizer, ok := lookupMap(tree, "solidity", "settings", "optimizer")
	if !ok {
		return nil
	}
	raw, ok := optimizer["runs"]
	if !ok {
		return nil
	}

	runs, err := parseRuns(raw)
	if err != nil {
		// drop the value so the rest of the manifest is still checked
		delete(optimizer, "runs")
		return err
	}
	optimizer["runs"] = runs
	return nil
}

// parseRuns accepts any integral number in [0, MaxOptimizerRuns]
func parseRuns(raw any) (uint64, error) {
	var f float64
	switch v := raw.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			f = float64(i)
			break
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", domain.ErrOptimizerRunsOutOfRange, v.String())
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: solidity.settings.optimizer.runs must be an integer, got %T", domain.ErrInvalidManifest, raw)
	}

	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", domain.ErrOptimizerRunsOutOfRange, raw)
	}
	if f < 0 || f > float64(config.MaxOptimizerRuns) {
		return 0, fmt.Errorf("%w: %v is outside [0, %d]", domain.ErrOptimizerRunsOutOfRange, raw, config.MaxOptimizerRuns)
	}
	return uint64(f), nil
}

// decodeToolchainConfig maps the generic tree onto ToolchainConfig and reports keys it did not use
func decodeToolchainConfig(tree map[string]any) (*config.ToolchainConfig, []string, error) {
	cfg := &config.ToolchainConfig{
		Solidity: config.SolidityConfig{
			Settings: config.CompilerSettings{
				Optimizer: config.OptimizerConfig{Runs: config.DefaultOptimizerRuns},
			},
		},
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   cfg,
		TagName:  "mapstructure",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create manifest decoder: %w", err)
	}

	if err := decoder.Decode(tree); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}

	if cfg.Networks == nil {
		cfg.Networks = make(map[string]config.NetworkConfig)
	}

	unused := append([]string(nil), md.Unused...)
	sort.Strings(unused)
	return cfg, unused, nil
}

// lookupMap walks nested tables by key
func lookupMap(tree map[string]any, keys ...string) (map[string]any, bool) {
	current := tree
	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}
