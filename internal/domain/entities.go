package domain

import "time"

type Document struct {
	ID      string
	Text    string
	Source  string
	ModTime time.Time
	Vars    map[string]string
}

type Corpus struct {
	Docs []Document
}

// TokenStream is the tokenized form of one document, in document order.
type TokenStream struct {
	DocID  string
	Tokens []string
}

type Stats struct {
	TotalDocs   int
	TotalTokens int
	VocabSize   int
	AvgDocLen   float64
}

type ScoredFeature struct {
	Feature string
	Score   float64
}

// KeynessResult reports a 2x2 association statistic for one feature.
// Positive Stat favors the target partition, negative the reference.
type KeynessResult struct {
	Feature    string
	Stat       float64
	P          float64
	TargetN    int
	ReferenceN int
}

// KWICMatch is one concordance line: the keyword at Position in DocID
// with up to window tokens of context on either side.
type KWICMatch struct {
	DocID    string
	Position int
	Pre      []string
	Keyword  string
	Post     []string
}

// ParsedToken is one row of a dependency-annotated token table.
// Head is the sentence-local index of the governing token, -1 for root.
type ParsedToken struct {
	Index  int
	Text   string
	Tag    string
	Entity string
	Head   int
	Rel    string
}

type ParsedSentence struct {
	Text   string
	Tokens []ParsedToken
}

// Get returns the document with the given ID, if present.
func (c Corpus) Get(id string) (Document, bool) {
	for _, d := range c.Docs {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

// Var collects the value of one docvar across all documents, in order.
func (c Corpus) Var(name string) []string {
	vals := make([]string, len(c.Docs))
	for i, d := range c.Docs {
		vals[i] = d.Vars[name]
	}
	return vals
}
