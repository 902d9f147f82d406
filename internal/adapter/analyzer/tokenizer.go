package analyzer

import (
	"strings"
	"unicode"
)

// Options control how text is split and filtered into tokens.
type Options struct {
	Lowercase     bool
	RemovePunct   bool
	RemoveNumbers bool
	RemoveStops   bool
	Stemming      bool
	MinChars      int
	ExtraStops    []string
}

// DefaultOptions match the common case-folded, punctuation-free setup.
func DefaultOptions() Options {
	return Options{
		Lowercase:   true,
		RemovePunct: true,
		RemoveStops: true,
		MinChars:    2,
	}
}

// Tokenizer splits text into tokens with optional case folding, stopword
// removal and stemming.
type Tokenizer struct {
	opts      Options
	stemmer   *PorterStemmer
	stopwords map[string]struct{}
}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer(opts Options) *Tokenizer {
	var stemmer *PorterStemmer
	if opts.Stemming {
		stemmer = NewPorterStemmer()
	}
	stops := englishStopwords()
	for _, s := range opts.ExtraStops {
		stops[strings.ToLower(s)] = struct{}{}
	}
	return &Tokenizer{
		opts:      opts,
		stemmer:   stemmer,
		stopwords: stops,
	}
}

// Tokenize splits text into tokens according to the configured options.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text, t.opts.RemovePunct)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if t.opts.Lowercase {
			word = strings.ToLower(word)
		}
		if !isWord(word) {
			// punctuation token, only present when RemovePunct is off
			tokens = append(tokens, word)
			continue
		}
		if t.opts.RemoveNumbers && isNumeric(word) {
			continue
		}
		if len([]rune(word)) < t.opts.MinChars {
			continue
		}
		if t.opts.RemoveStops {
			if _, isStop := t.stopwords[strings.ToLower(word)]; isStop {
				continue
			}
		}
		if t.opts.Stemming && t.stemmer != nil {
			word = t.stemmer.Stem(word)
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// splitWords splits text on unicode boundaries. With removePunct the split
// happens on anything that is not a letter, digit or underscore; otherwise
// punctuation runs are kept as tokens of their own.
func splitWords(text string, removePunct bool) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' || r == '-':
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			if !removePunct {
				words = append(words, string(r))
			}
		}
	}
	flush()

	return words
}

func isWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return true
}
