package netcheck

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Target hosts include self-signed internal services, so certificate
// verification stays off and the probe identifies as a desktop browser.
const probeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// DefaultProbeTimeout bounds a single probe request.
const DefaultProbeTimeout = 5 * time.Second

// Prober performs best-effort liveness checks against login URIs.
type Prober struct {
	httpClient *http.Client
}

// NewProber creates a Prober with the given per-request timeout. Redirects
// are followed; TLS certificates are not verified.
func NewProber(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // internal self-signed targets
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewProberWithClient creates a Prober around an existing client, for tests.
func NewProberWithClient(client *http.Client) *Prober {
	return &Prober{httpClient: client}
}

// IsReachable reports whether uri answers with a usable HTTP response.
// A status in [200,400) is reachable. A status in [400,600) earns exactly one
// fallback attempt against the bare hostname over https; that attempt's
// result is final. Network-level failures are unreachable with no fallback.
func (p *Prober) IsReachable(ctx context.Context, uri string) bool {
	uri = withScheme(uri)

	status, err := p.tryURL(ctx, uri)
	if err != nil {
		slog.Debug("Probe failed", "url", uri, "error", err)
		return false
	}
	if status >= 200 && status < 400 {
		return true
	}
	if status < 400 || status >= 600 {
		return false
	}

	host := HostFromURI(uri)
	if host == "" {
		return false
	}
	fallback := fmt.Sprintf("https://%s", host)
	slog.Debug("Probe got error status, falling back to bare domain",
		"url", uri, "status", status, "fallback", fallback)

	status, err = p.tryURL(ctx, fallback)
	if err != nil {
		return false
	}
	return status >= 200 && status < 400
}

func (p *Prober) tryURL(ctx context.Context, uri string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create probe request: %w", err)
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probe request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode, nil
}

func withScheme(uri string) string {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri
	}
	return "https://" + uri
}
