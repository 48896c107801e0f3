// Package vault reads Bitwarden export files into normalized items and
// writes the categorized table back out.
package vault

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// export mirrors the subset of the Bitwarden JSON export we consume.
type export struct {
	Folders []exportFolder `json:"folders"`
	Items   []exportItem   `json:"items"`
}

type exportFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type exportItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     json.Number  `json:"type"`
	Notes    string       `json:"notes"`
	FolderID string       `json:"folderId"`
	Login    *exportLogin `json:"login"`
}

type exportLogin struct {
	Username string      `json:"username"`
	URIs     []exportURI `json:"uris"`
}

type exportURI struct {
	URI string `json:"uri"`
}

// ReadExport parses a Bitwarden export JSON file into normalized items.
// Folder ids are joined to folder names; login fields are flattened; the
// URI list keeps its export order. Items without a login block still come
// through with empty credentials.
func ReadExport(path string) ([]model.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var exp export
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse export file: %w", err)
	}

	folders := make(map[string]string, len(exp.Folders))
	for _, f := range exp.Folders {
		folders[f.ID] = f.Name
	}

	items := make([]model.Item, 0, len(exp.Items))
	for _, raw := range exp.Items {
		item := model.Item{
			ID:     raw.ID,
			Name:   raw.Name,
			Type:   raw.Type.String(),
			Notes:  raw.Notes,
			Folder: folders[raw.FolderID],
		}
		if raw.Login != nil {
			item.Username = raw.Login.Username
			for _, u := range raw.Login.URIs {
				if u.URI != "" {
					item.URIs = append(item.URIs, u.URI)
				}
			}
		}
		items = append(items, item)
	}

	return items, nil
}
