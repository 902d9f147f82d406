package kwic

import (
	"strings"
	"testing"

	"textkit/internal/domain"
)

func testStreams() []domain.TokenStream {
	return []domain.TokenStream{
		{DocID: "d1", Tokens: []string{"the", "new", "tax", "plan", "cuts", "taxes", "hard"}},
		{DocID: "d2", Tokens: []string{"schools", "need", "more", "funding"}},
	}
}

func TestLocate_Glob(t *testing.T) {
	matches, err := Locate(testStreams(), "tax*", 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	first := matches[0]
	if first.DocID != "d1" || first.Position != 2 || first.Keyword != "tax" {
		t.Errorf("unexpected first match: %+v", first)
	}
	if strings.Join(first.Pre, " ") != "the new" {
		t.Errorf("unexpected pre context: %v", first.Pre)
	}
	if strings.Join(first.Post, " ") != "plan cuts" {
		t.Errorf("unexpected post context: %v", first.Post)
	}
}

func TestLocate_WindowClamped(t *testing.T) {
	matches, err := Locate(testStreams(), "schools", 5)
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if len(matches[0].Pre) != 0 {
		t.Errorf("expected empty pre context at document start, got %v", matches[0].Pre)
	}
	if len(matches[0].Post) != 3 {
		t.Errorf("expected post clamped to document end, got %v", matches[0].Post)
	}
}

func TestLocate_CaseInsensitive(t *testing.T) {
	streams := []domain.TokenStream{
		{DocID: "d1", Tokens: []string{"Tax", "Plan"}},
	}
	matches, err := Locate(streams, "tax", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Keyword != "Tax" {
		t.Errorf("expected case-insensitive match keeping surface form, got %+v", matches)
	}
}

func TestLocate_NoMatches(t *testing.T) {
	matches, err := Locate(testStreams(), "zebra", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestLocate_EmptyPattern(t *testing.T) {
	if _, err := Locate(testStreams(), "", 2); err == nil {
		t.Error("expected error for empty pattern")
	}
}

func TestFormat(t *testing.T) {
	m := domain.KWICMatch{
		DocID:   "d1",
		Pre:     []string{"the", "new"},
		Keyword: "tax",
		Post:    []string{"plan"},
	}
	got := Format(m)
	if got != "d1: the new [tax] plan" {
		t.Errorf("unexpected format: %q", got)
	}
}
