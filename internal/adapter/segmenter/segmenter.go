package segmenter

import (
	"fmt"
	"strings"
	"unicode"

	"textkit/internal/domain"
)

// Unit is the segmentation target: sentence or paragraph sub-documents.
type Unit string

const (
	Sentences  Unit = "sentences"
	Paragraphs Unit = "paragraphs"
)

// Segmenter reshapes documents into smaller units. Each unit becomes a
// document of its own whose ID is "<parent>.<n>" and whose docvars are the
// parent's plus "parent".
type Segmenter struct {
	unit Unit
}

func New(unit Unit) *Segmenter {
	return &Segmenter{unit: unit}
}

// Reshape splits every corpus document into units, dropping empty ones.
func (s *Segmenter) Reshape(corpus domain.Corpus) (domain.Corpus, error) {
	var out domain.Corpus

	for _, doc := range corpus.Docs {
		var parts []string
		switch s.unit {
		case Sentences:
			parts = splitSentences(doc.Text)
		case Paragraphs:
			parts = splitParagraphs(doc.Text)
		default:
			return out, fmt.Errorf("unknown segmentation unit %q", s.unit)
		}

		n := 0
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n++

			vars := make(map[string]string, len(doc.Vars)+1)
			for k, v := range doc.Vars {
				vars[k] = v
			}
			vars["parent"] = doc.ID

			out.Docs = append(out.Docs, domain.Document{
				ID:      fmt.Sprintf("%s.%d", doc.ID, n),
				Text:    part,
				Source:  doc.Source,
				ModTime: doc.ModTime,
				Vars:    vars,
			})
		}
	}

	return out, nil
}

// splitSentences breaks text on terminal punctuation followed by space and
// an upper-case or digit start. Abbreviation handling is deliberately
// minimal; the parser adapter does proper segmentation when tags matter.
func splitSentences(text string) []string {
	var parts []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// lookahead: sentence ends only before whitespace + capital/digit
		j := i + 1
		for j < len(runes) && (runes[j] == '"' || runes[j] == '\'' || runes[j] == ')') {
			current.WriteRune(runes[j])
			j++
		}
		if j >= len(runes) {
			i = j - 1
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		if unicode.IsSpace(runes[j]) {
			k := j
			for k < len(runes) && unicode.IsSpace(runes[k]) {
				k++
			}
			if k >= len(runes) || unicode.IsUpper(runes[k]) || unicode.IsDigit(runes[k]) {
				parts = append(parts, current.String())
				current.Reset()
				i = k - 1
				continue
			}
		}
		i = j - 1
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n\n")
}
