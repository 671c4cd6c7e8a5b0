// Package export serializes merged hashtag datasets for downstream
// consumers: the JSON document the website reads, and an optional formatted
// workbook for manual review.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/patelpranay97/creator-toolkit/internal/trends"
)

// metaKey is the reserved top-level key holding run metadata. Category keys
// never collide with it.
const metaKey = "_meta"

// JSONWriter writes the dataset as one JSON document, overwriting any
// existing file at the target path.
type JSONWriter struct {
	path   string
	logger *zap.Logger
}

// NewJSONWriter returns a writer targeting path.
func NewJSONWriter(path string, logger *zap.Logger) *JSONWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONWriter{path: path, logger: logger}
}

// Write emits the metadata object under the reserved key plus one
// array-valued key per category.
func (w *JSONWriter) Write(data trends.Dataset, meta trends.Meta) error {
	doc := make(map[string]any, len(data)+1)
	doc[metaKey] = meta
	for key, tags := range data {
		doc[key] = tags
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(w.path, payload, 0o644); err != nil {
		return fmt.Errorf("write dataset to %s: %w", w.path, err)
	}

	w.logger.Info("saved hashtag dataset",
		zap.String("path", w.path),
		zap.Int("categories", len(data)),
		zap.Int("total_hashtags", data.Total()),
		zap.String("source", string(meta.Source)),
	)
	return nil
}
