package model

import "strings"

const androidURIPrefix = "androidapp://"

// Item represents a single normalized vault entry from a Bitwarden export.
// Items are created once during normalization and never mutated by the
// classification pipeline.
type Item struct {
	ID       string
	Name     string
	URIs     []string // login URIs, insertion order preserved
	Username string
	Type     string
	Folder   string
	Notes    string
}

// WebURIs returns the item's URIs with android-app identifiers filtered out,
// preserving order.
func (i *Item) WebURIs() []string {
	web := make([]string, 0, len(i.URIs))
	for _, u := range i.URIs {
		if !strings.HasPrefix(strings.ToLower(u), androidURIPrefix) {
			web = append(web, u)
		}
	}
	return web
}

// JoinedURIs renders the URI list back to the comma-joined form used by the
// CSV output and the classification prompt.
func (i *Item) JoinedURIs() string {
	return strings.Join(i.URIs, ",")
}
