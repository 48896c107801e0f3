package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// ExtractJSONArray locates the first JSON array substring in content. The
// service is not guaranteed to return only JSON; some models wrap the array
// in prose or markdown fences.
func ExtractJSONArray(content string) (string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end < start {
		return "", fmt.Errorf("%w: no JSON array found", common.ErrInvalidResponse)
	}
	return content[start : end+1], nil
}

// serviceResult decodes one array element. Confidence comes in as a float
// because some models reply with fractional scores; it is truncated to the
// 0-100 integer scale the pipeline uses.
type serviceResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// ParseResults decodes the service's reply into classification results.
// Failure to locate or decode the array is retryable.
func ParseResults(content string) ([]model.Result, error) {
	raw, err := ExtractJSONArray(content)
	if err != nil {
		return nil, err
	}

	var decoded []serviceResult
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}

	results := make([]model.Result, len(decoded))
	for i, d := range decoded {
		results[i] = model.Result{
			ID:         d.ID,
			Name:       d.Name,
			Category:   d.Category,
			Confidence: int(d.Confidence),
			Reason:     d.Reason,
		}
	}
	return results, nil
}
