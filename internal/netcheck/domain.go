// Package netcheck provides the network-facing checks used by the rule
// cascade: hostname extraction, private-address detection, and best-effort
// reachability probing.
package netcheck

import (
	"net/url"
	"strings"
)

// HostFromURI extracts the lowercased hostname from a single URI, prefixing
// http:// when no scheme is present. Returns an empty string when nothing
// parseable is found.
func HostFromURI(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// ExtractDomain pulls a canonical hostname out of an item's web URIs, in
// order, stopping at the first URI that yields one. When no URI parses, an
// email-style username supplies the domain after its last @. Returns an empty
// string when no domain is known. Never fails and touches no network.
func ExtractDomain(webURIs []string, username string) string {
	for _, u := range webURIs {
		if host := HostFromURI(u); host != "" {
			return host
		}
	}
	if at := strings.LastIndex(username, "@"); at >= 0 {
		return strings.ToLower(username[at+1:])
	}
	return ""
}
