package vault

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// csvHeader lists the output columns, matching the normalized item fields.
var csvHeader = []string{"name", "login_uri", "login_username", "type", "folder", "notes", "id"}

// WriteCSV persists the categorized table. Rows keep the input order and
// every original field passes through unchanged; only the folder column is
// replaced, and only when the classification produced a non-empty category.
// items and results must be order-aligned and of equal length.
func WriteCSV(path string, items []model.Item, results []model.Result) error {
	if len(items) != len(results) {
		return fmt.Errorf("item/result count mismatch: %d vs %d", len(items), len(results))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range items {
		item := &items[i]
		folder := item.Folder
		if results[i].Category != "" {
			folder = results[i].Category
		}
		row := []string{
			item.Name,
			item.JoinedURIs(),
			item.Username,
			item.Type,
			folder,
			item.Notes,
			item.ID,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return f.Close()
}
