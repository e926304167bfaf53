// Package match reconciles raw OCR product names against a caller-supplied
// catalog: exact barcode lookup first, fuzzy name scoring as the fallback.
package match

import (
	"log/slog"
	"strings"

	"github.com/shelfscan/shelfscan/internal/entity"
)

// NameIndex is the per-batch lookup derived from the product catalog. It
// preserves catalog insertion order so that equal fuzzy scores resolve to
// the first-inserted name, independent of Go's map iteration order.
type NameIndex struct {
	names     []string
	byName    map[string]string
	byBarcode map[string]string
}

// BuildIndex derives a fresh NameIndex from the catalog. Entries with an
// empty trimmed name or a missing identifier are dropped. Duplicate names
// keep the last entry; collisions are surfaced as a warning because they
// usually indicate a master-data problem, not an intended override.
func BuildIndex(catalog []entity.CatalogEntry, logger *slog.Logger) *NameIndex {
	if logger == nil {
		logger = slog.Default()
	}
	idx := &NameIndex{
		byName:    make(map[string]string, len(catalog)),
		byBarcode: make(map[string]string, len(catalog)),
	}
	collisions := 0
	for _, e := range catalog {
		name := strings.TrimSpace(e.Name)
		if name == "" || e.ID == "" {
			continue
		}
		if _, dup := idx.byName[name]; dup {
			collisions++
		} else {
			idx.names = append(idx.names, name)
		}
		idx.byName[name] = e.ID
		if bc := strings.TrimSpace(e.Barcode); bc != "" {
			idx.byBarcode[bc] = e.ID
		}
	}
	if collisions > 0 {
		logger.Warn("duplicate catalog names, last entry wins", "collisions", collisions)
	}
	return idx
}

// Len returns the number of distinct indexed names.
func (x *NameIndex) Len() int { return len(x.names) }

// Names returns the indexed names in catalog insertion order.
func (x *NameIndex) Names() []string { return x.names }

// ProductID looks up the identifier for an exact indexed name.
func (x *NameIndex) ProductID(name string) (string, bool) {
	id, ok := x.byName[name]
	return id, ok
}

// BarcodeID looks up the identifier for an exact barcode.
func (x *NameIndex) BarcodeID(code string) (string, bool) {
	id, ok := x.byBarcode[strings.TrimSpace(code)]
	return id, ok
}
