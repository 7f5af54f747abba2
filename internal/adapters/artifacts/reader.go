package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-toolchain/internal/domain"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// libraryPlaceholder matches unlinked library references, which occupy 20 bytes once linked
var libraryPlaceholder = regexp.MustCompile(`__\$[0-9a-fA-F]{34}\$__`)

// artifact covers both the Foundry and the Hardhat artifact layouts
type artifact struct {
	ContractName     string          `json:"contractName"`
	SourceName       string          `json:"sourceName"`
	Bytecode         json.RawMessage `json:"bytecode"`
	DeployedBytecode json.RawMessage `json:"deployedBytecode"`
	Metadata         json.RawMessage `json:"metadata"`
}

type foundryMetadata struct {
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// ReaderAdapter reads compiled contracts from a Foundry out/ or Hardhat artifacts/ tree
type ReaderAdapter struct {
	log *slog.Logger
}

// NewReaderAdapter creates a new artifact reader
func NewReaderAdapter(log *slog.Logger) *ReaderAdapter {
	return &ReaderAdapter{log: log}
}

// ReadArtifacts returns every deployable contract under dir.
// Interfaces and abstract contracts have no runtime code and are skipped.
func (r *ReaderAdapter) ReadArtifacts(ctx context.Context, dir string) ([]*domain.ContractArtifact, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("artifacts directory %s does not exist, compile the project first", dir)
	}

	var contracts []*domain.ContractArtifact
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".json") || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		contract, err := readArtifact(path)
		if err != nil {
			r.log.Debug("skipping artifact", "path", path, "error", err)
			return nil
		}
		if contract == nil {
			return nil
		}

		if rel, err := filepath.Rel(dir, path); err == nil {
			contract.ArtifactPath = rel
		}
		contracts = append(contracts, contract)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].ArtifactPath < contracts[j].ArtifactPath
	})
	return contracts, nil
}

// readArtifact parses one artifact file. A nil contract means the file holds no runtime code.
func readArtifact(path string) (*domain.ContractArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	if a.DeployedBytecode == nil {
		return nil, fmt.Errorf("no deployedBytecode")
	}

	runtime, err := decodeBytecode(a.DeployedBytecode)
	if err != nil {
		return nil, fmt.Errorf("deployedBytecode: %w", err)
	}
	if len(runtime) == 0 {
		return nil, nil
	}

	initCode, err := decodeBytecode(a.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("bytecode: %w", err)
	}

	name, sourceName := contractIdentity(path, a)
	return &domain.ContractArtifact{
		Name:        name,
		SourceName:  sourceName,
		InitCode:    initCode,
		RuntimeCode: runtime,
	}, nil
}

// decodeBytecode accepts a hex string (Hardhat) or an {"object": "0x..."} object (Foundry)
func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var code string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &code); err != nil {
			return nil, err
		}
	} else {
		var obj struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		code = obj.Object
	}

	code = libraryPlaceholder.ReplaceAllString(code, strings.Repeat("0", 40))
	return common.FromHex(code), nil
}

func contractIdentity(path string, a artifact) (string, string) {
	if a.ContractName != "" {
		return a.ContractName, a.SourceName
	}

	if len(a.Metadata) > 0 && a.Metadata[0] == '{' {
		var md foundryMetadata
		if err := json.Unmarshal(a.Metadata, &md); err == nil {
			for source, name := range md.Settings.CompilationTarget {
				return name, source
			}
		}
	}

	// Foundry lays out out/<File>.sol/<Contract>.json
	name := strings.TrimSuffix(filepath.Base(path), ".json")
	return name, filepath.Base(filepath.Dir(path))
}

var _ usecase.ArtifactReader = (*ReaderAdapter)(nil)
