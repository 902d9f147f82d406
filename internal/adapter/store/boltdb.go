package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"textkit/internal/domain"
)

var (
	bucketDocs   = []byte("docs")
	bucketTexts  = []byte("texts")
	bucketTokens = []byte("tokens")
	bucketStats  = []byte("stats")
	keyStats     = []byte("corpus_stats")
)

// BoltStore persists an ingested corpus: documents with docvars, their raw
// text, and their token streams.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketDocs, bucketTexts, bucketTokens, bucketStats}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

// docMeta keeps the ingest sequence so ListDocs can restore corpus order.
type docMeta struct {
	Seq     int               `json:"seq"`
	Source  string            `json:"source"`
	ModTime int64             `json:"mod_time"`
	Vars    map[string]string `json:"vars,omitempty"`
}

// PutDocument stores one document, its text and its token stream.
func (s *BoltStore) PutDocument(seq int, doc domain.Document, tokens []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := docMeta{
			Seq:     seq,
			Source:  doc.Source,
			ModTime: doc.ModTime.Unix(),
			Vars:    doc.Vars,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketDocs).Put([]byte(doc.ID), data); err != nil {
			return err
		}
		if err := tx.Bucket(bucketTexts).Put([]byte(doc.ID), []byte(doc.Text)); err != nil {
			return err
		}
		tokData, err := json.Marshal(tokens)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketTokens).Put([]byte(doc.ID), tokData)
	})
}

func (s *BoltStore) GetDocument(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document not found: %s", id)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		text := tx.Bucket(bucketTexts).Get([]byte(id))
		doc = domain.Document{
			ID:      id,
			Text:    string(text),
			Source:  meta.Source,
			ModTime: time.Unix(meta.ModTime, 0),
			Vars:    meta.Vars,
		}
		return nil
	})
	return doc, err
}

func (s *BoltStore) DeleteDocument(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketDocs).Delete([]byte(id)); err != nil {
			return err
		}
		if err := tx.Bucket(bucketTexts).Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(bucketTokens).Delete([]byte(id))
	})
}

// ListDocuments returns every stored document in ingest order.
func (s *BoltStore) ListDocuments() ([]domain.Document, error) {
	type seqDoc struct {
		seq int
		doc domain.Document
	}
	var docs []seqDoc

	err := s.db.View(func(tx *bbolt.Tx) error {
		texts := tx.Bucket(bucketTexts)
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, seqDoc{
				seq: meta.Seq,
				doc: domain.Document{
					ID:      string(k),
					Text:    string(texts.Get(k)),
					Source:  meta.Source,
					ModTime: time.Unix(meta.ModTime, 0),
					Vars:    meta.Vars,
				},
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].seq < docs[j].seq })

	out := make([]domain.Document, len(docs))
	for i, d := range docs {
		out[i] = d.doc
	}
	return out, nil
}

func (s *BoltStore) GetTokens(id string) ([]string, error) {
	var tokens []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTokens).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("tokens not found: %s", id)
		}
		return json.Unmarshal(data, &tokens)
	})
	return tokens, err
}

// ListTokenStreams returns every token stream in ingest order.
func (s *BoltStore) ListTokenStreams() ([]domain.TokenStream, error) {
	docs, err := s.ListDocuments()
	if err != nil {
		return nil, err
	}

	streams := make([]domain.TokenStream, 0, len(docs))
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTokens)
		for _, doc := range docs {
			var tokens []string
			if data := b.Get([]byte(doc.ID)); data != nil {
				if err := json.Unmarshal(data, &tokens); err != nil {
					return err
				}
			}
			streams = append(streams, domain.TokenStream{DocID: doc.ID, Tokens: tokens})
		}
		return nil
	})
	return streams, err
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// Clear drops every bucket and recreates them empty.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketDocs, bucketTexts, bucketTokens, bucketStats}
		for _, b := range buckets {
			if err := tx.DeleteBucket(b); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
