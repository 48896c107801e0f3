package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
)

// scriptedClient returns canned replies (or errors) in sequence.
type scriptedClient struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (s *scriptedClient) Classify(_ context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "", errors.New("no scripted reply")
}

func noSleepRetry() common.RetryOptions {
	return common.RetryOptions{MaxAttempts: 3, Sleep: common.NoSleep}
}

func TestClassifyBatch(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`[{"id":"a1","name":"GitHub","category":"Tools/Development","confidence":96,"reason":"Code hosting"}]`,
	}}
	c := NewClassifier(client, noSleepRetry())

	items := []BatchItem{{ID: "a1", Name: "GitHub", URL: "https://github.com", Username: "dev@github.com"}}
	results, err := c.ClassifyBatch(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tools/Development", results[0].Category)
	assert.Equal(t, 1, client.calls)

	// The prompt carries the taxonomy and the item projection.
	assert.Contains(t, client.prompts[0], "Financial/Banking")
	assert.Contains(t, client.prompts[0], `"id": "a1"`)
	assert.Contains(t, client.prompts[0], "https://github.com")
}

func TestClassifyBatchEmpty(t *testing.T) {
	client := &scriptedClient{}
	c := NewClassifier(client, noSleepRetry())

	results, err := c.ClassifyBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Equal(t, 0, client.calls)
}

func TestClassifyBatchRetriesTransientFailures(t *testing.T) {
	tests := []struct {
		name    string
		replies []string
		errs    []error
	}{
		{
			name:    "network error then success",
			errs:    []error{errors.New("connection reset"), nil},
			replies: []string{"", `[{"id":"a1","category":"Social","confidence":90,"reason":"Social network"}]`},
		},
		{
			name:    "parse error then success",
			replies: []string{"no array here", `[{"id":"a1","category":"Social","confidence":90,"reason":"Social network"}]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{replies: tt.replies, errs: tt.errs}
			c := NewClassifier(client, noSleepRetry())

			results, err := c.ClassifyBatch(context.Background(), []BatchItem{{ID: "a1"}})
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, "Social", results[0].Category)
			assert.Equal(t, 2, client.calls)
		})
	}
}

func TestClassifyBatchExhaustsRetries(t *testing.T) {
	client := &scriptedClient{
		errs: []error{errors.New("boom"), errors.New("boom"), errors.New("boom")},
	}
	c := NewClassifier(client, noSleepRetry())

	_, err := c.ClassifyBatch(context.Background(), []BatchItem{{ID: "a1"}})
	require.ErrorIs(t, err, common.ErrClassificationFailed)
	assert.Equal(t, 3, client.calls)
}

func TestBuildPromptListsWholeTaxonomy(t *testing.T) {
	prompt, err := BuildPrompt([]BatchItem{{ID: "x"}})
	require.NoError(t, err)
	for _, category := range Taxonomy {
		assert.Contains(t, prompt, "- "+category)
	}
	// One prompt per batch, not per item.
	assert.Equal(t, 1, strings.Count(prompt, "### Items to categorize:"))
}
