// Package dfm builds and manipulates document-feature matrices: sparse
// docs-by-terms count tables that the analysis packages consume.
package dfm

import (
	"fmt"
	"math"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/james-bowman/sparse"

	"textkit/internal/domain"
)

// Weighting schemes for matrix cells.
const (
	WeightCount = "count"
	WeightProp  = "prop"
	WeightTFIDF = "tfidf"
)

// DFM is a document-feature matrix. Rows are documents, columns features,
// in stable first-seen order. Docvars stay aligned with rows through every
// operation.
type DFM struct {
	docIDs    []string
	features  []string
	featIdx   map[string]int
	docVars   []map[string]string
	mat       *sparse.CSR
	weighting string
}

// New builds a count DFM from token streams. vars may be nil; otherwise it
// must hold one docvar map per stream, in the same order.
func New(streams []domain.TokenStream, vars []map[string]string) (*DFM, error) {
	if vars != nil && len(vars) != len(streams) {
		return nil, fmt.Errorf("docvars length %d does not match %d documents", len(vars), len(streams))
	}

	d := &DFM{
		docIDs:    make([]string, len(streams)),
		featIdx:   make(map[string]int),
		docVars:   make([]map[string]string, len(streams)),
		weighting: WeightCount,
	}

	for i, s := range streams {
		d.docIDs[i] = s.DocID
		if vars != nil {
			d.docVars[i] = vars[i]
		}
		for _, tok := range s.Tokens {
			if _, ok := d.featIdx[tok]; !ok {
				d.featIdx[tok] = len(d.features)
				d.features = append(d.features, tok)
			}
		}
	}

	dok := sparse.NewDOK(len(streams), len(d.features))
	for i, s := range streams {
		for _, tok := range s.Tokens {
			j := d.featIdx[tok]
			dok.Set(i, j, dok.At(i, j)+1)
		}
	}
	d.mat = dok.ToCSR()

	return d, nil
}

// FromMatrix wraps an existing count matrix as a DFM. vars may be nil.
func FromMatrix(docIDs, features []string, vars []map[string]string, m *sparse.DOK) (*DFM, error) {
	r, c := m.Dims()
	if r != len(docIDs) || c != len(features) {
		return nil, fmt.Errorf("matrix is %dx%d but %d docs and %d features given", r, c, len(docIDs), len(features))
	}
	if vars == nil {
		vars = make([]map[string]string, len(docIDs))
	}
	if len(vars) != len(docIDs) {
		return nil, fmt.Errorf("docvars length %d does not match %d documents", len(vars), len(docIDs))
	}

	featIdx := make(map[string]int, len(features))
	for j, f := range features {
		featIdx[f] = j
	}

	return &DFM{
		docIDs:    append([]string(nil), docIDs...),
		features:  append([]string(nil), features...),
		featIdx:   featIdx,
		docVars:   vars,
		mat:       m.ToCSR(),
		weighting: WeightCount,
	}, nil
}

func (d *DFM) NDocs() int     { return len(d.docIDs) }
func (d *DFM) NFeatures() int { return len(d.features) }

func (d *DFM) DocIDs() []string   { return d.docIDs }
func (d *DFM) Features() []string { return d.features }
func (d *DFM) Weighting() string  { return d.weighting }

// At returns the cell value for document i, feature j.
func (d *DFM) At(i, j int) float64 { return d.mat.At(i, j) }

// FeatureIndex returns the column for a feature, if present.
func (d *DFM) FeatureIndex(f string) (int, bool) {
	j, ok := d.featIdx[f]
	return j, ok
}

// DocIndex returns the row for a document ID, if present.
func (d *DFM) DocIndex(id string) (int, bool) {
	for i, did := range d.docIDs {
		if did == id {
			return i, true
		}
	}
	return 0, false
}

// Matrix exposes the underlying sparse matrix.
func (d *DFM) Matrix() *sparse.CSR { return d.mat }

// Var returns the docvar value for document i.
func (d *DFM) Var(i int, name string) string {
	if d.docVars[i] == nil {
		return ""
	}
	return d.docVars[i][name]
}

// DocVars returns the full docvar map for document i (may be nil).
func (d *DFM) DocVars(i int) map[string]string { return d.docVars[i] }

// Vars collects one docvar across all documents, row-aligned.
func (d *DFM) Vars(name string) []string {
	vals := make([]string, len(d.docIDs))
	for i := range d.docIDs {
		vals[i] = d.Var(i, name)
	}
	return vals
}

// DoRow calls fn for every non-zero cell of document i.
func (d *DFM) DoRow(i int, fn func(j int, v float64)) {
	d.mat.DoRowNonZero(i, func(_, j int, v float64) {
		fn(j, v)
	})
}

// TermFreq sums each feature's values across all documents.
func (d *DFM) TermFreq() []float64 {
	tf := make([]float64, len(d.features))
	d.mat.DoNonZero(func(_, j int, v float64) {
		tf[j] += v
	})
	return tf
}

// DocFreq counts, per feature, the documents with a non-zero cell.
func (d *DFM) DocFreq() []int {
	df := make([]int, len(d.features))
	d.mat.DoNonZero(func(_, j int, v float64) {
		if v != 0 {
			df[j]++
		}
	})
	return df
}

// TopFeatures returns the k highest total-frequency features, descending.
// Ties break alphabetically to keep output stable.
func (d *DFM) TopFeatures(k int) []domain.ScoredFeature {
	tf := d.TermFreq()
	feats := make([]domain.ScoredFeature, len(d.features))
	for j, f := range d.features {
		feats[j] = domain.ScoredFeature{Feature: f, Score: tf[j]}
	}
	sort.Slice(feats, func(a, b int) bool {
		if feats[a].Score != feats[b].Score {
			return feats[a].Score > feats[b].Score
		}
		return feats[a].Feature < feats[b].Feature
	})
	if k > 0 && k < len(feats) {
		feats = feats[:k]
	}
	return feats
}

// Trim drops features below the frequency floors or above the document
// proportion ceiling. Surviving features keep their relative order.
func (d *DFM) Trim(minTermFreq, minDocFreq int, maxDocProp float64) *DFM {
	tf := d.TermFreq()
	df := d.DocFreq()
	n := float64(len(d.docIDs))

	keep := make([]int, 0, len(d.features))
	for j := range d.features {
		if tf[j] < float64(minTermFreq) {
			continue
		}
		if df[j] < minDocFreq {
			continue
		}
		if maxDocProp > 0 && maxDocProp < 1 && float64(df[j])/n > maxDocProp {
			continue
		}
		keep = append(keep, j)
	}

	return d.withFeatures(keep)
}

// Select keeps (or, with keep=false, removes) features matching any of the
// glob patterns.
func (d *DFM) Select(patterns []string, keep bool) *DFM {
	matches := func(f string) bool {
		for _, p := range patterns {
			if ok, err := doublestar.Match(p, f); err == nil && ok {
				return true
			}
		}
		return false
	}

	var kept []int
	for j, f := range d.features {
		if matches(f) == keep {
			kept = append(kept, j)
		}
	}
	return d.withFeatures(kept)
}

// Rows returns a new DFM with the given document rows, in the given order.
func (d *DFM) Rows(keep []int) *DFM {
	return d.withDocs(keep)
}

// Subset keeps the documents whose docvar equals value.
func (d *DFM) Subset(name, value string) *DFM {
	var kept []int
	for i := range d.docIDs {
		if d.Var(i, name) == value {
			kept = append(kept, i)
		}
	}
	return d.withDocs(kept)
}

// GroupBy sums rows that share a docvar value. Groups appear in first-seen
// document order and become the new document IDs.
func (d *DFM) GroupBy(name string) *DFM {
	var groups []string
	groupIdx := make(map[string]int)
	rowGroup := make([]int, len(d.docIDs))

	for i := range d.docIDs {
		val := d.Var(i, name)
		g, ok := groupIdx[val]
		if !ok {
			g = len(groups)
			groupIdx[val] = g
			groups = append(groups, val)
		}
		rowGroup[i] = g
	}

	dok := sparse.NewDOK(len(groups), len(d.features))
	d.mat.DoNonZero(func(i, j int, v float64) {
		g := rowGroup[i]
		dok.Set(g, j, dok.At(g, j)+v)
	})

	vars := make([]map[string]string, len(groups))
	for g, val := range groups {
		vars[g] = map[string]string{name: val}
	}

	return &DFM{
		docIDs:    groups,
		features:  append([]string(nil), d.features...),
		featIdx:   copyIdx(d.featIdx),
		docVars:   vars,
		mat:       dok.ToCSR(),
		weighting: d.weighting,
	}
}

// Weight applies a weighting scheme to a count matrix. tfidf multiplies
// counts by log(N/df); prop divides each row by its total.
func (d *DFM) Weight(scheme string) (*DFM, error) {
	if d.weighting != WeightCount {
		return nil, fmt.Errorf("cannot apply %q weighting to a %q matrix", scheme, d.weighting)
	}
	if scheme == WeightCount {
		return d, nil
	}

	dok := sparse.NewDOK(len(d.docIDs), len(d.features))

	switch scheme {
	case WeightProp:
		rowSums := make([]float64, len(d.docIDs))
		d.mat.DoNonZero(func(i, _ int, v float64) {
			rowSums[i] += v
		})
		d.mat.DoNonZero(func(i, j int, v float64) {
			if rowSums[i] > 0 {
				dok.Set(i, j, v/rowSums[i])
			}
		})
	case WeightTFIDF:
		df := d.DocFreq()
		n := float64(len(d.docIDs))
		d.mat.DoNonZero(func(i, j int, v float64) {
			if df[j] > 0 {
				dok.Set(i, j, v*math.Log(n/float64(df[j])))
			}
		})
	default:
		return nil, fmt.Errorf("unknown weighting scheme %q", scheme)
	}

	return &DFM{
		docIDs:    append([]string(nil), d.docIDs...),
		features:  append([]string(nil), d.features...),
		featIdx:   copyIdx(d.featIdx),
		docVars:   d.copyVars(),
		mat:       dok.ToCSR(),
		weighting: scheme,
	}, nil
}

// withFeatures rebuilds the matrix keeping only the given feature columns.
func (d *DFM) withFeatures(keep []int) *DFM {
	features := make([]string, len(keep))
	featIdx := make(map[string]int, len(keep))
	oldToNew := make(map[int]int, len(keep))
	for newJ, oldJ := range keep {
		features[newJ] = d.features[oldJ]
		featIdx[features[newJ]] = newJ
		oldToNew[oldJ] = newJ
	}

	dok := sparse.NewDOK(len(d.docIDs), len(keep))
	d.mat.DoNonZero(func(i, j int, v float64) {
		if newJ, ok := oldToNew[j]; ok {
			dok.Set(i, newJ, v)
		}
	})

	return &DFM{
		docIDs:    append([]string(nil), d.docIDs...),
		features:  features,
		featIdx:   featIdx,
		docVars:   d.copyVars(),
		mat:       dok.ToCSR(),
		weighting: d.weighting,
	}
}

// withDocs rebuilds the matrix keeping only the given document rows.
func (d *DFM) withDocs(keep []int) *DFM {
	docIDs := make([]string, len(keep))
	vars := make([]map[string]string, len(keep))
	oldToNew := make(map[int]int, len(keep))
	for newI, oldI := range keep {
		docIDs[newI] = d.docIDs[oldI]
		vars[newI] = d.docVars[oldI]
		oldToNew[oldI] = newI
	}

	dok := sparse.NewDOK(len(keep), len(d.features))
	d.mat.DoNonZero(func(i, j int, v float64) {
		if newI, ok := oldToNew[i]; ok {
			dok.Set(newI, j, v)
		}
	})

	return &DFM{
		docIDs:    docIDs,
		features:  append([]string(nil), d.features...),
		featIdx:   copyIdx(d.featIdx),
		docVars:   vars,
		mat:       dok.ToCSR(),
		weighting: d.weighting,
	}
}

func (d *DFM) copyVars() []map[string]string {
	vars := make([]map[string]string, len(d.docVars))
	copy(vars, d.docVars)
	return vars
}

func copyIdx(idx map[string]int) map[string]int {
	out := make(map[string]int, len(idx))
	for k, v := range idx {
		out[k] = v
	}
	return out
}
