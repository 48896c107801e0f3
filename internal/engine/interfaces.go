package engine

import (
	"context"

	"github.com/munim/organize-bitwarden-folders-ai/internal/llm"
	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// Prober checks whether a login URI answers at all.
type Prober interface {
	IsReachable(ctx context.Context, uri string) bool
}

// PrivateDetector decides whether a URI points into a private network.
type PrivateDetector interface {
	IsPrivateURI(uri string) bool
}

// BatchClassifier sends a batch of escalated items to the external
// classification service and returns the parsed results.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, items []llm.BatchItem) ([]model.Result, error)
}
