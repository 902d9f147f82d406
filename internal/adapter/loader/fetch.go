package loader

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"textkit/internal/domain"
)

// Fetch downloads a corpus file from a URL. CSV and TSV responses are read
// as document tables with the given text field; anything else becomes a
// single plain-text document.
func Fetch(url, textField, idField string) (domain.Corpus, error) {
	client := &http.Client{Timeout: 60 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Corpus{}, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	switch {
	case strings.HasSuffix(url, ".csv"):
		return NewCSVLoader(textField, idField, ',').Load(resp.Body, url)
	case strings.HasSuffix(url, ".tsv"):
		return NewCSVLoader(textField, idField, '\t').Load(resp.Body, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("failed to read %s: %w", url, err)
	}

	id := path.Base(url)
	if id == "" || id == "." || id == "/" {
		id = "doc1"
	}

	return domain.Corpus{Docs: []domain.Document{{
		ID:      id,
		Text:    string(data),
		Source:  url,
		ModTime: time.Now(),
		Vars:    map[string]string{},
	}}}, nil
}
