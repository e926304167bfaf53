// Package catalog loads product master data from JSON files. Input is
// validated against a schema before use so that a malformed catalog fails
// loudly at the boundary instead of silently matching nothing.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/shelfscan/shelfscan/internal/entity"
)

// Schema returns the catalog JSON-Schema (draft 2020-12 subset) as a
// generic map: an array of {id, name, barcode_gtin?} objects.
func Schema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"id":           map[string]any{"type": "string", "minLength": 1},
				"name":         map[string]any{"type": "string"},
				"barcode_gtin": map[string]any{"type": "string"},
			},
			"required": []string{"id", "name"},
		},
	}
}

// ValidateJSON validates raw catalog bytes against Schema.
func ValidateJSON(data []byte) error {
	b, err := json.Marshal(Schema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("catalog.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("catalog does not match schema: %w", err)
	}
	return nil
}

// Parse validates and decodes catalog JSON into entries.
func Parse(data []byte) ([]entity.CatalogEntry, error) {
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}
	var entries []entity.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return entries, nil
}

// Load reads and parses a catalog file.
func Load(path string) ([]entity.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}
