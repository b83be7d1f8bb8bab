// Package model loads the versioned catalogue/template bundle. The bundle is
// a plain JSON file validated against a strict schema; anything invalid or
// unreadable degrades to the built-in defaults so the service always starts.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Arshavi-03/Finergize-recommend/internal/catalog"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/telemetry"
	"github.com/Arshavi-03/Finergize-recommend/internal/survey"
)

// DefaultVersion identifies the built-in data set.
const DefaultVersion = "builtin-1"

// Bundle is the persisted catalogue and question templates.
type Bundle struct {
	Version   string            `json:"version"`
	Features  []catalog.Feature `json:"features"`
	Questions []survey.Question `json:"questions"`
}

// Default returns the built-in bundle.
func Default() *Bundle {
	return &Bundle{
		Version:   DefaultVersion,
		Features:  featureList(catalog.Default()),
		Questions: survey.DefaultTemplates(),
	}
}

// Load reads and strictly validates a bundle file.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle file: %w", err)
	}

	// Decode to a generic document first so schema validation sees the raw
	// shape, then unmarshal into the typed bundle.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("bundle parse error: %w", err)
	}
	if errs := validateBundle(doc); len(errs) > 0 {
		return nil, fmt.Errorf("bundle schema violations: %s", strings.Join(errs, "; "))
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("bundle decode error: %w", err)
	}
	return &bundle, nil
}

// LoadOrDefault loads the bundle at path, logging and falling back to the
// built-in defaults on any failure. An empty path selects the defaults
// silently.
func LoadOrDefault(path string) *Bundle {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	bundle, err := Load(path)
	if err != nil {
		telemetry.Warn("model.bundle_fallback", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return Default()
	}
	telemetry.Info("model.bundle_loaded", map[string]any{
		"path":      path,
		"version":   bundle.Version,
		"features":  len(bundle.Features),
		"questions": len(bundle.Questions),
	})
	return bundle
}

// Catalog builds the feature catalogue from the bundle.
func (b *Bundle) Catalog() *catalog.Catalog {
	return catalog.New(b.Features)
}

// Survey builds the survey generator from the bundle.
func (b *Bundle) Survey() *survey.Generator {
	return survey.NewGenerator(b.Questions)
}

// Marshal renders the bundle as indented JSON suitable for a bundle file.
func Marshal(b *Bundle) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

func featureList(c *catalog.Catalog) []catalog.Feature {
	ids := c.Order()
	out := make([]catalog.Feature, 0, len(ids))
	for _, id := range ids {
		f, _ := c.Get(id)
		out = append(out, f)
	}
	return out
}
