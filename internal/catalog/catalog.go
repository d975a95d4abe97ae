// Package catalog serves the static brief templates and performance
// patterns that back the dashboard. The catalog is read from YAML, either
// the embedded default or a file on disk, and can be hot reloaded.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"creative-hub/internal/core/domain"
)

//go:embed default.yaml
var defaultCatalog []byte

// Document is the on-disk layout of a catalog file.
type Document struct {
	Briefs   []domain.BriefTemplate      `yaml:"briefs"`
	Patterns []domain.PerformancePattern `yaml:"patterns"`
}

// Catalog is a thread-safe, swappable view of a Document.
type Catalog struct {
	mu  sync.RWMutex
	doc Document
}

// Default returns a Catalog built from the embedded default file.
func Default() (*Catalog, error) {
	doc, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return &Catalog{doc: doc}, nil
}

// Open loads a Catalog from path, or the embedded default when path is
// empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Catalog{doc: doc}, nil
}

// Load reads and parses a catalog file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes YAML into a Document and checks that ids are present and
// unique.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	seen := make(map[string]struct{}, len(doc.Briefs)+len(doc.Patterns))
	for _, b := range doc.Briefs {
		if err := checkID(seen, "brief", b.ID); err != nil {
			return Document{}, err
		}
	}
	for _, p := range doc.Patterns {
		if err := checkID(seen, "pattern", p.ID); err != nil {
			return Document{}, err
		}
	}
	return doc, nil
}

func checkID(seen map[string]struct{}, kind, id string) error {
	if id == "" {
		return errors.New(kind + " without id")
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	seen[id] = struct{}{}
	return nil
}

// Replace swaps the served document.
func (c *Catalog) Replace(doc Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc
}

// Briefs returns all brief templates in file order.
func (c *Catalog) Briefs() []domain.BriefTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.doc.Briefs)
}

// Brief returns the brief template with id.
func (c *Catalog) Brief(id string) (domain.BriefTemplate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := slices.IndexFunc(c.doc.Briefs, func(b domain.BriefTemplate) bool { return b.ID == id })
	if i < 0 {
		return domain.BriefTemplate{}, false
	}
	return c.doc.Briefs[i], true
}

// Patterns returns all performance patterns in file order.
func (c *Catalog) Patterns() []domain.PerformancePattern {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.doc.Patterns)
}
