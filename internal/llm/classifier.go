package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// Classifier wraps a provider Client with prompt construction, response
// parsing, and the bounded retry policy for a whole batch round trip.
type Classifier struct {
	client Client
	retry  common.RetryOptions
}

// DefaultRetryOptions mirrors the service call policy: two retries after the
// first attempt, five seconds apart.
func DefaultRetryOptions() common.RetryOptions {
	return common.RetryOptions{
		MaxAttempts: 3,
		Delay:       5 * time.Second,
	}
}

// NewClassifier creates a Classifier around client. Zero-valued retry
// options fall back to defaults.
func NewClassifier(client Client, retry common.RetryOptions) *Classifier {
	if retry.MaxAttempts <= 0 {
		retry = common.RetryOptions{Sleep: retry.Sleep, MaxAttempts: 3, Delay: 5 * time.Second}
	}
	return &Classifier{client: client, retry: retry}
}

// ClassifyBatch sends one batch of escalated items to the service and
// returns the parsed results. Network, HTTP, and parse failures share the
// same retry loop; when retries are exhausted the error is returned and the
// caller falls back to empty results for the batch.
func (c *Classifier) ClassifyBatch(ctx context.Context, items []BatchItem) ([]model.Result, error) {
	if len(items) == 0 {
		return nil, nil
	}

	prompt, err := BuildPrompt(items)
	if err != nil {
		return nil, err
	}

	var results []model.Result
	err = common.WithRetry(ctx, func() error {
		content, classifyErr := c.client.Classify(ctx, prompt)
		if classifyErr != nil {
			return classifyErr
		}
		parsed, parseErr := ParseResults(content)
		if parseErr != nil {
			return parseErr
		}
		results = parsed
		return nil
	}, c.retry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrClassificationFailed, err)
	}

	if len(results) != len(items) {
		// The service is trusted to preserve order and length; log when it
		// does not so silent misassignment is at least visible.
		slog.Warn("Service returned unexpected result count",
			"sent", len(items),
			"received", len(results))
	}

	return results, nil
}
