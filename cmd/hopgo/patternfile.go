package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/hopgo/blobstore"
	"github.com/hupe1980/hopgo/persistence"
)

// PatternFile is the YAML document format shared by the train and recall
// commands.
type PatternFile struct {
	Dimension int         `yaml:"dimension"`
	Seed      int64       `yaml:"seed,omitempty"`
	Patterns  [][]float64 `yaml:"patterns"`
}

func loadPatternFile(path string) (*PatternFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf PatternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if pf.Dimension <= 0 {
		return nil, fmt.Errorf("%s: dimension must be positive, got %d", path, pf.Dimension)
	}

	return &pf, nil
}

func savePatternFile(path string, pf *PatternFile) error {
	data, err := yaml.Marshal(pf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// snapshotStore splits a snapshot path into a local blob store rooted at
// its directory and the blob name within it.
func snapshotStore(path string) (*blobstore.LocalStore, string, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	store, err := blobstore.NewLocalStore(dir)
	if err != nil {
		return nil, "", err
	}

	return store, name, nil
}

func parseCompression(s string) (persistence.Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return persistence.CompressionNone, nil
	case "zstd":
		return persistence.CompressionZstd, nil
	case "lz4":
		return persistence.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, zstd or lz4)", s)
	}
}

// parseState parses a comma-separated bipolar state like "1,-1,1,-1".
func parseState(s string) ([]float64, error) {
	fields := strings.Split(s, ",")

	state := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid state element %q: %w", f, err)
		}
		state[i] = v
	}

	return state, nil
}
