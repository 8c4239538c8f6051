// Package catalog loads resume template catalogs from files, URLs, object storage and SQL.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/template-finder/internal/schemas"
	"github.com/jonathan/template-finder/internal/types"
	catalogschema "github.com/jonathan/template-finder/schemas"
)

// envelope is the wrapped catalog shape served by the template API.
type envelope struct {
	Templates []types.TemplateRecord `json:"templates"`
}

// Decode parses a JSON catalog, either a bare array of templates or an
// object with a templates array. The document is validated against the
// catalog schema and the records are normalized.
func Decode(data []byte) ([]types.TemplateRecord, error) {
	if err := schemas.ValidateJSONBytes(catalogschema.TemplateCatalog, data); err != nil {
		return nil, err
	}

	var records []types.TemplateRecord
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to decode template list: %w", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("failed to decode template catalog: %w", err)
		}
		records = env.Templates
	}

	return Normalize(records)
}

// Normalize trims ids, replaces missing tag and keyword lists with empty
// ones and rejects blank or duplicate ids. The input slice is not modified.
func Normalize(records []types.TemplateRecord) ([]types.TemplateRecord, error) {
	out := make([]types.TemplateRecord, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			return nil, fmt.Errorf("template at index %d has no id", i)
		}
		if first, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q at index %d (first at %d)", rec.ID, i, first)
		}
		seen[rec.ID] = i

		rec.Tags = cleanList(rec.Tags)
		rec.Keywords = cleanList(rec.Keywords)
		out = append(out, rec)
	}

	return out, nil
}

// cleanList copies a list, never returning nil.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	return append(out, values...)
}
