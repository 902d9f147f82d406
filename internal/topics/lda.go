// Package topics fits Latent Dirichlet Allocation topic models on
// document-feature matrices.
package topics

import (
	"fmt"
	"sort"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"textkit/internal/dfm"
	"textkit/internal/domain"
)

// Options configure an LDA fit.
type Options struct {
	K          int
	Iterations int
	BurnIn     int
	Alpha      float64
	Eta        float64
	Seed       uint64
	Processes  int
}

// Model is a fitted LDA topic model.
type Model struct {
	K        int
	docIDs   []string
	features []string

	docTopics  mat.Matrix // topics x docs
	topicWords mat.Matrix // topics x features
}

// Fit trains LDA on the matrix. The DFM must hold raw counts; nlp expects
// the term-document orientation, so the matrix is transposed on the way in.
func Fit(m *dfm.DFM, opts Options) (*Model, error) {
	if opts.K < 2 {
		return nil, fmt.Errorf("topic count must be at least 2, got %d", opts.K)
	}
	if m.NFeatures() == 0 || m.NDocs() == 0 {
		return nil, fmt.Errorf("cannot fit topics on an empty matrix")
	}
	if m.Weighting() != dfm.WeightCount {
		return nil, fmt.Errorf("lda requires a count matrix, got %q weighting", m.Weighting())
	}

	lda := nlp.NewLatentDirichletAllocation(opts.K)
	if opts.Iterations > 0 {
		lda.Iterations = opts.Iterations
		lda.TransformationPasses = opts.Iterations / 2
	}
	if opts.BurnIn > 0 {
		lda.BurnInPasses = opts.BurnIn
	}
	if opts.Alpha > 0 {
		lda.Alpha = opts.Alpha
	}
	if opts.Eta > 0 {
		lda.Eta = opts.Eta
	}
	if opts.Processes > 0 {
		lda.Processes = opts.Processes
	}
	if opts.Seed != 0 {
		lda.Rnd = rand.New(rand.NewSource(opts.Seed))
	}

	docsOverTopics, err := lda.FitTransform(m.Matrix().T())
	if err != nil {
		return nil, fmt.Errorf("lda fit failed: %w", err)
	}

	return &Model{
		K:          opts.K,
		docIDs:     m.DocIDs(),
		features:   m.Features(),
		docTopics:  docsOverTopics,
		topicWords: lda.Components(),
	}, nil
}

// TopTerms returns the n highest-weight features of a topic, descending.
func (m *Model) TopTerms(topic, n int) ([]domain.ScoredFeature, error) {
	if topic < 0 || topic >= m.K {
		return nil, fmt.Errorf("topic %d out of range [0,%d)", topic, m.K)
	}

	_, cols := m.topicWords.Dims()
	if cols != len(m.features) {
		return nil, fmt.Errorf("model has %d word columns for %d features", cols, len(m.features))
	}

	terms := make([]domain.ScoredFeature, len(m.features))
	for j, f := range m.features {
		terms[j] = domain.ScoredFeature{Feature: f, Score: m.topicWords.At(topic, j)}
	}
	sort.Slice(terms, func(a, b int) bool {
		if terms[a].Score != terms[b].Score {
			return terms[a].Score > terms[b].Score
		}
		return terms[a].Feature < terms[b].Feature
	})

	if n > 0 && n < len(terms) {
		terms = terms[:n]
	}
	return terms, nil
}

// DocTopics returns the topic distribution of one document, normalized to
// sum to one.
func (m *Model) DocTopics(doc int) ([]float64, error) {
	rows, cols := m.docTopics.Dims()
	if rows != m.K {
		return nil, fmt.Errorf("model has %d topic rows for k=%d", rows, m.K)
	}
	if doc < 0 || doc >= cols {
		return nil, fmt.Errorf("document %d out of range [0,%d)", doc, cols)
	}

	dist := make([]float64, m.K)
	total := 0.0
	for t := 0; t < m.K; t++ {
		dist[t] = m.docTopics.At(t, doc)
		total += dist[t]
	}
	if total > 0 {
		for t := range dist {
			dist[t] /= total
		}
	}
	return dist, nil
}

// TopDocs returns the n documents most associated with a topic.
func (m *Model) TopDocs(topic, n int) ([]domain.ScoredFeature, error) {
	if topic < 0 || topic >= m.K {
		return nil, fmt.Errorf("topic %d out of range [0,%d)", topic, m.K)
	}

	docs := make([]domain.ScoredFeature, len(m.docIDs))
	for i, id := range m.docIDs {
		dist, err := m.DocTopics(i)
		if err != nil {
			return nil, err
		}
		docs[i] = domain.ScoredFeature{Feature: id, Score: dist[topic]}
	}
	sort.Slice(docs, func(a, b int) bool {
		if docs[a].Score != docs[b].Score {
			return docs[a].Score > docs[b].Score
		}
		return docs[a].Feature < docs[b].Feature
	})

	if n > 0 && n < len(docs) {
		docs = docs[:n]
	}
	return docs, nil
}

// DocIDs returns the document IDs the model was fitted on.
func (m *Model) DocIDs() []string { return m.docIDs }
