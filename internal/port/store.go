package port

import "textkit/internal/domain"

type CorpusStore interface {
	PutDocument(seq int, doc domain.Document, tokens []string) error

	GetDocument(id string) (domain.Document, error)

	DeleteDocument(id string) error

	ListDocuments() ([]domain.Document, error)

	GetTokens(id string) ([]string, error)

	ListTokenStreams() ([]domain.TokenStream, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Clear() error

	Close() error
}
