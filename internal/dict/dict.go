// Package dict implements keyword dictionaries: named keys mapped to glob
// patterns, applied to a document-feature matrix to count key occurrences.
package dict

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/james-bowman/sparse"
	"gopkg.in/yaml.v3"

	"textkit/internal/dfm"
	"textkit/internal/domain"
)

// Dictionary maps keys to the glob patterns that count toward them.
// Keys keep the order of the source file.
type Dictionary struct {
	Keys     []string
	Patterns map[string][]string
}

// Load reads a YAML dictionary of the form:
//
//	economy:
//	  - tax*
//	  - budget
//	social:
//	  - school*
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return Parse(data)
}

// Parse builds a Dictionary from YAML bytes.
func Parse(data []byte) (*Dictionary, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("empty dictionary")
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dictionary must be a mapping of key to patterns")
	}

	d := &Dictionary{Patterns: make(map[string][]string)}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		var patterns []string
		if err := doc.Content[i+1].Decode(&patterns); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		if _, dup := d.Patterns[key]; dup {
			return nil, fmt.Errorf("duplicate dictionary key %q", key)
		}
		d.Keys = append(d.Keys, key)
		d.Patterns[key] = patterns
	}

	return d, nil
}

// Lookup maps each feature of the DFM to the dictionary keys it matches.
// A feature matching several keys counts toward all of them.
func (d *Dictionary) Lookup(features []string) map[int][]int {
	hits := make(map[int][]int)
	for j, f := range features {
		for k, key := range d.Keys {
			for _, p := range d.Patterns[key] {
				if ok, err := doublestar.Match(p, f); err == nil && ok {
					hits[j] = append(hits[j], k)
					break
				}
			}
		}
	}
	return hits
}

// Apply collapses a DFM's features into the dictionary's keys, summing the
// counts of every matching feature per document.
func (d *Dictionary) Apply(m *dfm.DFM) (*dfm.DFM, error) {
	hits := d.Lookup(m.Features())

	dok := sparse.NewDOK(m.NDocs(), len(d.Keys))
	for i := 0; i < m.NDocs(); i++ {
		m.DoRow(i, func(j int, v float64) {
			for _, k := range hits[j] {
				dok.Set(i, k, dok.At(i, k)+v)
			}
		})
	}

	vars := make([]map[string]string, m.NDocs())
	for i := range vars {
		vars[i] = m.DocVars(i)
	}

	return dfm.FromMatrix(m.DocIDs(), d.Keys, vars, dok)
}

// Totals sums each key's counts across the whole DFM, in key order.
func (d *Dictionary) Totals(m *dfm.DFM) []domain.ScoredFeature {
	hits := d.Lookup(m.Features())

	totals := make([]float64, len(d.Keys))
	for i := 0; i < m.NDocs(); i++ {
		m.DoRow(i, func(j int, v float64) {
			for _, k := range hits[j] {
				totals[k] += v
			}
		})
	}

	out := make([]domain.ScoredFeature, len(d.Keys))
	for k, key := range d.Keys {
		out[k] = domain.ScoredFeature{Feature: key, Score: totals[k]}
	}
	return out
}
