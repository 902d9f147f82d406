package usecase

import (
	"fmt"
	"sort"

	"textkit/internal/domain"
	"textkit/internal/port"
)

// IngestUseCase turns raw documents into stored token streams.
type IngestUseCase struct {
	store     port.CorpusStore
	cleaner   port.Cleaner
	tokenizer port.Tokenizer
	segmenter port.Segmenter
}

// NewIngestUseCase creates a new ingest use case. The cleaner and
// segmenter may be nil, in which case those stages are skipped.
func NewIngestUseCase(
	store port.CorpusStore,
	cleaner port.Cleaner,
	tokenizer port.Tokenizer,
	segmenter port.Segmenter,
) *IngestUseCase {
	return &IngestUseCase{
		store:     store,
		cleaner:   cleaner,
		tokenizer: tokenizer,
		segmenter: segmenter,
	}
}

// IngestResult contains the results of an ingest operation.
type IngestResult struct {
	DocsStored  int
	DocsSkipped int
	TotalTokens int
	Errors      []string
}

// Ingest cleans, optionally reshapes, tokenizes and stores a corpus,
// replacing any previously stored documents. The progress callback, if
// non-nil, is invoked once per document after it has been stored.
func (u *IngestUseCase) Ingest(corpus domain.Corpus, progress func()) (*IngestResult, error) {
	result := &IngestResult{}

	if len(corpus.Docs) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}

	if u.segmenter != nil {
		reshaped, err := u.segmenter.Reshape(corpus)
		if err != nil {
			return nil, fmt.Errorf("failed to reshape corpus: %w", err)
		}
		corpus = reshaped
	}

	if err := u.store.Clear(); err != nil {
		return nil, fmt.Errorf("failed to clear store: %w", err)
	}

	vocab := make(map[string]struct{})
	for i, doc := range corpus.Docs {
		text := doc.Text
		if u.cleaner != nil {
			text = u.cleaner.Clean(text)
		}
		tokens := u.tokenizer.Tokenize(text)
		if len(tokens) == 0 {
			result.DocsSkipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: no tokens after processing", doc.ID))
			if progress != nil {
				progress()
			}
			continue
		}

		doc.Text = text
		if err := u.store.PutDocument(i, doc, tokens); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", doc.ID, err)
		}

		result.DocsStored++
		result.TotalTokens += len(tokens)
		for _, t := range tokens {
			vocab[t] = struct{}{}
		}
		if progress != nil {
			progress()
		}
	}

	avg := 0.0
	if result.DocsStored > 0 {
		avg = float64(result.TotalTokens) / float64(result.DocsStored)
	}
	stats := domain.Stats{
		TotalDocs:   result.DocsStored,
		TotalTokens: result.TotalTokens,
		VocabSize:   len(vocab),
		AvgDocLen:   avg,
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	return result, nil
}

// Summary reports the stored corpus stats together with a per-document
// token count listing, in ingest order.
func (u *IngestUseCase) Summary() (domain.Stats, []domain.Document, error) {
	stats, err := u.store.GetStats()
	if err != nil {
		return domain.Stats{}, nil, fmt.Errorf("failed to read stats: %w", err)
	}
	docs, err := u.store.ListDocuments()
	if err != nil {
		return domain.Stats{}, nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return stats, docs, nil
}

// DocVarValues returns the distinct values of a document variable across
// the stored corpus, sorted alphabetically.
func DocVarValues(docs []domain.Document, name string) []string {
	seen := make(map[string]struct{})
	for _, d := range docs {
		if v, ok := d.Vars[name]; ok {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
