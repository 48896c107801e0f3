package llm

import (
	"context"
	"time"
)

// Client defines the interface for classification service providers. It
// takes a fully built prompt and returns the raw text of the model's reply;
// parsing is the caller's concern so providers stay swappable.
type Client interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Config holds the settings needed to construct a provider client.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// BatchItem is the compact projection of a vault item sent to the
// classification service.
type BatchItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Type     string `json:"type"`
	Folder   string `json:"folder"`
}
