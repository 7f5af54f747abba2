package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/domain/config"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// CacheFileName is the release list cache, relative to <project>/cache
const CacheFileName = "solc-releases.json"

// releaseList is the list.json document published per platform
type releaseList struct {
	Builds        []releaseBuild    `json:"builds"`
	Releases      map[string]string `json:"releases"`
	LatestRelease string            `json:"latestRelease"`
}

type releaseBuild struct {
	Path        string   `json:"path"`
	Version     string   `json:"version"`
	Prerelease  string   `json:"prerelease,omitempty"`
	Build       string   `json:"build"`
	LongVersion string   `json:"longVersion"`
	Keccak256   string   `json:"keccak256"`
	SHA256      string   `json:"sha256"`
	URLs        []string `json:"urls"`
}

// ReleaseResolverAdapter looks compiler versions up in the published solc release list.
// The list is fetched once and cached on disk.
type ReleaseResolverAdapter struct {
	client    *http.Client
	baseURL   string
	platform  string
	cachePath string

	mu   sync.RWMutex
	list *releaseList
}

// NewReleaseResolverAdapter creates a new resolver
func NewReleaseResolverAdapter(cfg *config.RuntimeConfig) *ReleaseResolverAdapter {
	return &ReleaseResolverAdapter{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   cfg.ReleaseListURL,
		platform:  cfg.Platform,
		cachePath: filepath.Join(cfg.ProjectRoot, "cache", CacheFileName),
	}
}

// Resolve returns the release build for version
func (r *ReleaseResolverAdapter) Resolve(ctx context.Context, version string) (*domain.CompilerRelease, error) {
	list, err := r.releaseList(ctx)
	if err != nil {
		return nil, err
	}

	path, ok := list.Releases[version]
	if !ok {
		return nil, fmt.Errorf("%w: solc %s is not published for %s", domain.ErrCompilerNotFound, version, r.platform)
	}

	for _, build := range list.Builds {
		if build.Path != path {
			continue
		}
		return &domain.CompilerRelease{
			Version:     build.Version,
			LongVersion: build.LongVersion,
			Path:        build.Path,
			SHA256:      build.SHA256,
			Platform:    r.platform,
			DownloadURL: fmt.Sprintf("%s/%s/%s", r.baseURL, r.platform, build.Path),
			Latest:      build.Version == list.LatestRelease,
		}, nil
	}

	return nil, fmt.Errorf("%w: release %s lists missing build %s", domain.ErrCompilerNotFound, version, path)
}

// releaseList returns the in-memory list, then the disk cache, then fetches it
func (r *ReleaseResolverAdapter) releaseList(ctx context.Context) (*releaseList, error) {
	r.mu.RLock()
	list := r.list
	r.mu.RUnlock()
	if list != nil {
		return list, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.list != nil {
		return r.list, nil
	}

	if cached, err := r.readCache(); err == nil {
		r.list = cached
		return cached, nil
	}

	fetched, raw, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	// A failed cache write only costs a refetch next time
	_ = r.writeCache(raw)

	r.list = fetched
	return fetched, nil
}

func (r *ReleaseResolverAdapter) fetch(ctx context.Context) (*releaseList, []byte, error) {
	url := fmt.Sprintf("%s/%s/list.json", strings.TrimSuffix(r.baseURL, "/"), r.platform)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch compiler releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("failed to fetch compiler releases: %s returned %d", url, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read compiler releases: %w", err)
	}

	var list releaseList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, nil, fmt.Errorf("failed to parse compiler releases: %w", err)
	}

	return &list, raw, nil
}

func (r *ReleaseResolverAdapter) readCache() (*releaseList, error) {
	data, err := os.ReadFile(r.cachePath)
	if err != nil {
		return nil, err
	}

	var list releaseList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if len(list.Releases) == 0 {
		return nil, fmt.Errorf("empty release cache")
	}
	return &list, nil
}

func (r *ReleaseResolverAdapter) writeCache(raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(r.cachePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(r.cachePath, raw, 0644)
}

var _ usecase.CompilerResolver = (*ReleaseResolverAdapter)(nil)
