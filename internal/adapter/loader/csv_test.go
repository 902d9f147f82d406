package loader

import (
	"strings"
	"testing"
)

func TestCSVLoader_Load(t *testing.T) {
	input := `id,text,party,year
d1,"The budget will be balanced",blue,2017
d2,"Taxes must come down",red,2017
d3,"Schools need funding",blue,2018
`
	l := NewCSVLoader("text", "id", ',')
	corpus, err := l.Load(strings.NewReader(input), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(corpus.Docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(corpus.Docs))
	}
	if corpus.Docs[0].ID != "d1" {
		t.Errorf("expected ID d1, got %s", corpus.Docs[0].ID)
	}
	if corpus.Docs[1].Text != "Taxes must come down" {
		t.Errorf("unexpected text: %q", corpus.Docs[1].Text)
	}
	if corpus.Docs[2].Vars["party"] != "blue" {
		t.Errorf("expected party=blue docvar, got %q", corpus.Docs[2].Vars["party"])
	}
	if corpus.Docs[0].Vars["year"] != "2017" {
		t.Errorf("expected year=2017 docvar, got %q", corpus.Docs[0].Vars["year"])
	}
}

func TestCSVLoader_GeneratedIDs(t *testing.T) {
	input := "text\nfirst doc\nsecond doc\n"

	l := NewCSVLoader("text", "", ',')
	corpus, err := l.Load(strings.NewReader(input), "test.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(corpus.Docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(corpus.Docs))
	}
	if corpus.Docs[0].ID != "doc1" || corpus.Docs[1].ID != "doc2" {
		t.Errorf("expected generated IDs doc1/doc2, got %s/%s", corpus.Docs[0].ID, corpus.Docs[1].ID)
	}
}

func TestCSVLoader_MissingTextField(t *testing.T) {
	input := "headline,body\nhello,world\n"

	l := NewCSVLoader("text", "", ',')
	if _, err := l.Load(strings.NewReader(input), "test.csv"); err == nil {
		t.Error("expected error for missing text field")
	}
}

func TestCSVLoader_TSV(t *testing.T) {
	input := "text\tlabel\nhello world\tpos\n"

	l := NewCSVLoader("text", "", '\t')
	corpus, err := l.Load(strings.NewReader(input), "test.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(corpus.Docs) != 1 || corpus.Docs[0].Vars["label"] != "pos" {
		t.Errorf("unexpected corpus: %+v", corpus.Docs)
	}
}
