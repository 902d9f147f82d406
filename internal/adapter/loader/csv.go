package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"textkit/internal/domain"
)

// CSVLoader reads a delimited table into a corpus: one row per document,
// the text field becomes the document body and every other column becomes
// a docvar.
type CSVLoader struct {
	TextField string
	IDField   string
	Comma     rune
}

func NewCSVLoader(textField, idField string, comma rune) *CSVLoader {
	if textField == "" {
		textField = "text"
	}
	if comma == 0 {
		comma = ','
	}
	return &CSVLoader{
		TextField: textField,
		IDField:   idField,
		Comma:     comma,
	}
}

func (l *CSVLoader) Load(r io.Reader, source string) (domain.Corpus, error) {
	var corpus domain.Corpus

	cr := csv.NewReader(r)
	cr.Comma = l.Comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return corpus, fmt.Errorf("failed to read header: %w", err)
	}

	textCol := -1
	idCol := -1
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if name == l.TextField {
			textCol = i
		}
		if l.IDField != "" && name == l.IDField {
			idCol = i
		}
	}
	if textCol < 0 {
		return corpus, fmt.Errorf("text field %q not found in header %v", l.TextField, header)
	}

	now := time.Now()
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return corpus, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}
		row++

		if textCol >= len(record) {
			continue
		}

		id := fmt.Sprintf("doc%d", row)
		if idCol >= 0 && idCol < len(record) && record[idCol] != "" {
			id = record[idCol]
		}

		vars := make(map[string]string)
		for i, name := range header {
			if i == textCol || i == idCol || i >= len(record) {
				continue
			}
			vars[name] = record[i]
		}

		corpus.Docs = append(corpus.Docs, domain.Document{
			ID:      id,
			Text:    record[textCol],
			Source:  source,
			ModTime: now,
			Vars:    vars,
		})
	}

	return corpus, nil
}
