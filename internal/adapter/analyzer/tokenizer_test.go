package analyzer

import (
	"testing"
)

func TestTokenizer_Tokenize_WithStemming(t *testing.T) {
	opts := DefaultOptions()
	opts.Stemming = true
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("running dogs are playing")
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}

	hasRun := false
	for _, token := range tokens {
		if token == "run" {
			hasRun = true
		}
	}
	if !hasRun {
		t.Errorf("expected 'running' to be stemmed to 'run', got %v", tokens)
	}
}

func TestTokenizer_Tokenize_WithoutStemming(t *testing.T) {
	tok := NewTokenizer(DefaultOptions())

	tokens := tok.Tokenize("running dogs are playing")
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}

	hasRunning := false
	for _, token := range tokens {
		if token == "running" {
			hasRunning = true
		}
	}
	if !hasRunning {
		t.Errorf("expected 'running' to remain unstemmed, got %v", tokens)
	}
}

func TestTokenizer_StopwordRemoval(t *testing.T) {
	tok := NewTokenizer(DefaultOptions())

	tokens := tok.Tokenize("the quick brown fox")
	for _, token := range tokens {
		if token == "the" {
			t.Errorf("stopword 'the' should be removed, got %v", tokens)
		}
	}
}

func TestTokenizer_KeepStopwords(t *testing.T) {
	opts := DefaultOptions()
	opts.RemoveStops = false
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("the quick brown fox")
	if len(tokens) != 4 {
		t.Errorf("expected 4 tokens with stopwords kept, got %v", tokens)
	}
}

func TestTokenizer_ExtraStopwords(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtraStops = []string{"fox"}
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("the quick brown fox")
	for _, token := range tokens {
		if token == "fox" {
			t.Errorf("extra stopword 'fox' should be removed, got %v", tokens)
		}
	}
}

func TestTokenizer_KeepPunctuation(t *testing.T) {
	opts := DefaultOptions()
	opts.RemovePunct = false
	opts.RemoveStops = false
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("hello, world!")
	want := []string{"hello", ",", "world", "!"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestTokenizer_RemoveNumbers(t *testing.T) {
	opts := DefaultOptions()
	opts.RemoveNumbers = true
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("budget rose 42 percent in 2019")
	for _, token := range tokens {
		if token == "42" || token == "2019" {
			t.Errorf("numeric token should be removed, got %v", tokens)
		}
	}
}

func TestTokenizer_NoLowercase(t *testing.T) {
	opts := DefaultOptions()
	opts.Lowercase = false
	opts.RemoveStops = false
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("London Bridge")
	if len(tokens) != 2 || tokens[0] != "London" {
		t.Errorf("expected case preserved, got %v", tokens)
	}
}

func TestTokenizer_ShortWordRemoval(t *testing.T) {
	opts := DefaultOptions()
	opts.RemoveStops = false
	tok := NewTokenizer(opts)

	tokens := tok.Tokenize("a I go to")
	for _, token := range tokens {
		if len(token) < 2 {
			t.Errorf("short word should be removed: %s", token)
		}
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer(DefaultOptions())

	tokens := tok.Tokenize("")
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", tokens)
	}
}
