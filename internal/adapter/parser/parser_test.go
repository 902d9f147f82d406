package parser

import "testing"

func TestParser_Parse(t *testing.T) {
	p := New(false)

	sentences, err := p.Parse("The dog chased the cat. Markets fell sharply.")
	if err != nil {
		t.Fatal(err)
	}

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}

	first := sentences[0]
	if len(first.Tokens) == 0 {
		t.Fatal("expected tokens in first sentence")
	}
	for _, tok := range first.Tokens {
		if tok.Tag == "" {
			t.Errorf("token %q missing POS tag", tok.Text)
		}
	}

	roots := 0
	for _, tok := range first.Tokens {
		if tok.Head == -1 {
			roots++
			if tok.Rel != "root" {
				t.Errorf("headless token %q has rel %q", tok.Text, tok.Rel)
			}
		} else if tok.Head < 0 || tok.Head >= len(first.Tokens) {
			t.Errorf("token %q has out-of-range head %d", tok.Text, tok.Head)
		}
	}
	if roots != 1 {
		t.Errorf("expected exactly one root, got %d", roots)
	}
}

func TestParser_EmptyText(t *testing.T) {
	p := New(false)

	sentences, err := p.Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 0 {
		t.Errorf("expected no sentences for empty text, got %d", len(sentences))
	}
}
