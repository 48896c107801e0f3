package llm

import (
	"fmt"
	"strings"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
)

// Supported providers.
const (
	ProviderOpenRouter = "openrouter"
	ProviderRequesty   = "requesty"
)

// CredentialVar returns the environment variable holding the API key for a
// provider.
func CredentialVar(provider string) (string, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY", nil
	case ProviderRequesty:
		return "REQUESTY_API_KEY", nil
	default:
		return "", fmt.Errorf("%w: %s", common.ErrUnknownProvider, provider)
	}
}

// NewClient creates a classification client for the configured provider.
// A missing API key is a fatal configuration error.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is required", common.ErrMissingConfig)
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenRouter:
		return newChatClient(
			"https://openrouter.ai/api/v1/chat/completions",
			cfg.Model,
			map[string]string{
				"Authorization": "Bearer " + cfg.APIKey,
				"HTTP-Referer":  "https://munim.net",
				"X-Title":       "munim.net tools",
			},
			cfg.Timeout,
		), nil
	case ProviderRequesty:
		return newChatClient(
			"https://router.requesty.ai/v1/chat/completions",
			cfg.Model,
			map[string]string{
				"Authorization": "Bearer " + cfg.APIKey,
				"HTTP-Referer":  "munim.net",
			},
			cfg.Timeout,
		), nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownProvider, cfg.Provider)
	}
}
