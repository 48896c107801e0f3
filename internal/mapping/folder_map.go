// Package mapping loads the optional static domain-to-folder map used to
// short-circuit classification for entries already sorted into known folders.
package mapping

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry pairs a domain (or domain substring) with the folder it maps to.
type Entry struct {
	Domain string `yaml:"domain"`
	Folder string `yaml:"folder"`
}

// FolderMap holds the parsed domain-folder mapping. Entries keep the file's
// order so substring matching is deterministic when two domains both match a
// username. Read-only after loading.
type FolderMap struct {
	folders map[string]struct{}
	entries []Entry
}

// Load reads a YAML file containing a list of {domain, folder} entries.
// Entries missing either field are skipped.
func Load(path string) (*FolderMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain-folder map: %w", err)
	}

	var raw []Entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse domain-folder map: %w", err)
	}

	m := &FolderMap{folders: make(map[string]struct{})}
	for _, e := range raw {
		if e.Domain == "" || e.Folder == "" {
			continue
		}
		e.Domain = strings.ToLower(e.Domain)
		m.entries = append(m.entries, e)
		m.folders[e.Folder] = struct{}{}
	}
	return m, nil
}

// HasFolder reports whether name is one of the mapped folders.
func (m *FolderMap) HasFolder(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.folders[name]
	return ok
}

// MatchUsername returns the folder of the first entry whose domain appears
// as a substring of the username (case-insensitive), in file order.
func (m *FolderMap) MatchUsername(username string) (string, bool) {
	if m == nil {
		return "", false
	}
	username = strings.ToLower(username)
	for _, e := range m.entries {
		if strings.Contains(username, e.Domain) {
			return e.Folder, true
		}
	}
	return "", false
}

// Len returns the number of usable entries.
func (m *FolderMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}
