package port

import "textkit/internal/domain"

type Cleaner interface {
	Clean(text string) string
}

type Tokenizer interface {
	Tokenize(text string) []string
}

type Segmenter interface {
	Reshape(corpus domain.Corpus) (domain.Corpus, error)
}
