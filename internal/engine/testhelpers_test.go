package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/munim/organize-bitwarden-folders-ai/internal/llm"
	"github.com/munim/organize-bitwarden-folders-ai/internal/mapping"
	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// fakeDetector marks configured hosts as private.
type fakeDetector struct {
	privateURIs map[string]bool
}

func (f *fakeDetector) IsPrivateURI(uri string) bool {
	return f.privateURIs[uri]
}

// fakeProber answers from a fixed table and records probe order.
type fakeProber struct {
	reachable map[string]bool
	mu        sync.Mutex
	probed    []string
}

func (f *fakeProber) IsReachable(_ context.Context, uri string) bool {
	f.mu.Lock()
	f.probed = append(f.probed, uri)
	f.mu.Unlock()
	return f.reachable[uri]
}

// fakeBatchClassifier returns scripted results per call and records the
// batches it was sent.
type fakeBatchClassifier struct {
	responses [][]model.Result
	errs      []error
	batches   [][]llm.BatchItem
}

func (f *fakeBatchClassifier) ClassifyBatch(_ context.Context, items []llm.BatchItem) ([]model.Result, error) {
	call := len(f.batches)
	f.batches = append(f.batches, items)
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return nil, nil
}

func loadFolderMap(t *testing.T, content string) *mapping.FolderMap {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	m, err := mapping.Load(path)
	require.NoError(t, err)
	return m
}

func testOptions() Options {
	return Options{
		BatchSize:    10,
		ProbeWorkers: 2,
		BatchPause:   0,
	}
}
