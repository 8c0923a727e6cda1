package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultVersion is assumed when a document carries no version key.
	DefaultVersion = 1
	// MaxVersion is the newest document revision this code understands.
	MaxVersion = 2
)

// ParseDocument decodes a theme document from YAML or JSON text. Unknown
// keys are not an error, documents in the wild carry fields we do not model.
func ParseDocument(data []byte, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode theme document: %w", err)
	}

	if doc.Version == 0 {
		log.Debug("Document has no version, assuming default", zap.Int("version", DefaultVersion))
		doc.Version = DefaultVersion
	}
	if doc.Version < 0 || doc.Version > MaxVersion {
		return nil, fmt.Errorf("unsupported theme document version %d", doc.Version)
	}

	doc.Title = strings.TrimSpace(doc.Title)
	doc.Slug = strings.TrimSpace(doc.Slug)
	return &doc, nil
}

// ParseDocumentFile reads and decodes the theme document at path.
func ParseDocumentFile(path string, log *zap.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme document: %w", err)
	}
	doc, err := ParseDocument(data, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FileSlug derives a filesystem friendly identifier for the document,
// preferring the declared slug over the title. Empty when the document
// declares neither.
func (d *Document) FileSlug() string {
	if d.Slug != "" {
		return slug.Make(d.Slug)
	}
	if d.Title != "" {
		return slug.Make(d.Title)
	}
	return ""
}
