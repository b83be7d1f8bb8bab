// Package catalog holds the fixed set of Finergize features that the
// recommendation engine scores. The catalogue is built once at start-up and is
// read-only afterwards; its insertion order is the canonical tie-break order
// for equal scores.
package catalog

// Feature describes one Finergize offering.
type Feature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IdealFor    string `json:"ideal_for"`
}

// Catalog is an ordered, immutable feature table.
type Catalog struct {
	features map[string]Feature
	order    []string
}

// New builds a catalog preserving the given feature order. Duplicate IDs keep
// the first occurrence.
func New(features []Feature) *Catalog {
	c := &Catalog{
		features: make(map[string]Feature, len(features)),
		order:    make([]string, 0, len(features)),
	}
	for _, f := range features {
		if f.ID == "" {
			continue
		}
		if _, ok := c.features[f.ID]; ok {
			continue
		}
		c.features[f.ID] = f
		c.order = append(c.order, f.ID)
	}
	return c
}

// Get returns the feature for the given ID.
func (c *Catalog) Get(id string) (Feature, bool) {
	f, ok := c.features[id]
	return f, ok
}

// All returns the catalogue keyed by feature ID.
func (c *Catalog) All() map[string]Feature {
	out := make(map[string]Feature, len(c.features))
	for id, f := range c.features {
		out[id] = f
	}
	return out
}

// Order returns the canonical feature order.
func (c *Catalog) Order() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Rank returns the position of the feature in the canonical order, or
// len(catalog) for unknown IDs so they sort last.
func (c *Catalog) Rank(id string) int {
	for i, known := range c.order {
		if known == id {
			return i
		}
	}
	return len(c.order)
}

// Len returns the number of features.
func (c *Catalog) Len() int {
	return len(c.order)
}
