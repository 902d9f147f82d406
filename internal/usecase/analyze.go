package usecase

import (
	"fmt"

	"textkit/internal/adapter/analyzer"
	"textkit/internal/dfm"
	"textkit/internal/domain"
	"textkit/internal/port"
)

// AnalyzeUseCase builds document-feature matrices from the stored corpus.
type AnalyzeUseCase struct {
	store port.CorpusStore
}

// NewAnalyzeUseCase creates a new analyze use case.
func NewAnalyzeUseCase(store port.CorpusStore) *AnalyzeUseCase {
	return &AnalyzeUseCase{store: store}
}

// MatrixOptions controls how the matrix is assembled from token streams.
type MatrixOptions struct {
	NGramMin    int
	NGramMax    int
	MinTermFreq int
	MinDocFreq  int
	MaxDocProp  float64
	Weighting   string
}

// Streams returns the stored token streams in ingest order, together
// with the document variables aligned to the same order.
func (u *AnalyzeUseCase) Streams() ([]domain.TokenStream, []map[string]string, error) {
	docs, err := u.store.ListDocuments()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil, fmt.Errorf("no documents ingested, run ingest first")
	}
	streams, err := u.store.ListTokenStreams()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load token streams: %w", err)
	}
	vars := make([]map[string]string, len(docs))
	for i, d := range docs {
		vars[i] = d.Vars
	}
	return streams, vars, nil
}

// BuildMatrix assembles a document-feature matrix from the stored token
// streams, applying n-gram expansion, trimming and weighting as requested.
func (u *AnalyzeUseCase) BuildMatrix(opts MatrixOptions) (*dfm.DFM, error) {
	streams, vars, err := u.Streams()
	if err != nil {
		return nil, err
	}

	if opts.NGramMax > 1 {
		min := opts.NGramMin
		if min < 1 {
			min = opts.NGramMax
		}
		for i := range streams {
			streams[i].Tokens = analyzer.NGramRange(streams[i].Tokens, min, opts.NGramMax, "")
		}
	}

	m, err := dfm.New(streams, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to build matrix: %w", err)
	}

	if opts.MinTermFreq > 1 || opts.MinDocFreq > 1 || (opts.MaxDocProp > 0 && opts.MaxDocProp < 1) {
		maxProp := opts.MaxDocProp
		if maxProp <= 0 {
			maxProp = 1
		}
		m = m.Trim(opts.MinTermFreq, opts.MinDocFreq, maxProp)
	}

	if opts.Weighting != "" && opts.Weighting != dfm.WeightCount {
		m, err = m.Weight(opts.Weighting)
		if err != nil {
			return nil, fmt.Errorf("failed to weight matrix: %w", err)
		}
	}

	return m, nil
}
