package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// LocalConfigFileName is the per-checkout defaults file inside the data dir
const LocalConfigFileName = "config.local.json"

// LocalConfigStoreAdapter keeps the per-checkout network and artifacts overrides
// in .trebtc/config.local.json. The same file is read by viper as a config source.
type LocalConfigStoreAdapter struct {
	configPath string
}

// NewLocalConfigStoreAdapter creates a new LocalConfigStoreAdapter
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		configPath: filepath.Join(cfg.DataDir, LocalConfigFileName),
	}
}

func (s *LocalConfigStoreAdapter) Exists() bool {
	info, err := os.Stat(s.configPath)
	return err == nil && !info.IsDir()
}

// Load returns the stored overrides. A missing file yields empty overrides,
// which leaves the network unset and the artifacts directory to detection.
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.configPath)
	if os.IsNotExist(err) {
		return config.DefaultLocalConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LocalConfigFileName, err)
	}

	localConfig := config.DefaultLocalConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return localConfig, nil
	}
	if err := json.Unmarshal(data, localConfig); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", s.configPath, err)
	}

	localConfig.Network = strings.TrimSpace(localConfig.Network)
	localConfig.Artifacts = strings.TrimSpace(localConfig.Artifacts)
	return localConfig, nil
}

// Save replaces the overrides file, creating the data dir on first use
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, cfg *config.LocalConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(s.configPath), err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local config: %w", err)
	}
	data = append(data, '\n')

	// viper reads this file on every command, so never leave it half written
	tmp := s.configPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", LocalConfigFileName, err)
	}
	if err := os.Rename(tmp, s.configPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", LocalConfigFileName, err)
	}

	return nil
}

func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
