package dict

import (
	"testing"

	"textkit/internal/dfm"
	"textkit/internal/domain"
)

const testDict = `
economy:
  - tax*
  - budget
social:
  - school*
  - funding
`

func testDFM(t *testing.T) *dfm.DFM {
	t.Helper()
	streams := []domain.TokenStream{
		{DocID: "d1", Tokens: []string{"tax", "taxes", "budget", "school"}},
		{DocID: "d2", Tokens: []string{"funding", "schools", "roads"}},
	}
	m, err := dfm.New(streams, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestParse(t *testing.T) {
	d, err := Parse([]byte(testDict))
	if err != nil {
		t.Fatal(err)
	}

	if len(d.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", d.Keys)
	}
	if d.Keys[0] != "economy" || d.Keys[1] != "social" {
		t.Errorf("expected key order preserved, got %v", d.Keys)
	}
	if len(d.Patterns["economy"]) != 2 {
		t.Errorf("expected 2 economy patterns, got %v", d.Patterns["economy"])
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("- a\n- b\n")); err == nil {
		t.Error("expected error for non-mapping dictionary")
	}
	if _, err := Parse([]byte("economy:\n  - tax\neconomy:\n  - vat\n")); err == nil {
		t.Error("expected error for duplicate key")
	}
}

func TestApply(t *testing.T) {
	d, err := Parse([]byte(testDict))
	if err != nil {
		t.Fatal(err)
	}
	m := testDFM(t)

	keyed, err := d.Apply(m)
	if err != nil {
		t.Fatal(err)
	}

	if keyed.NFeatures() != 2 {
		t.Fatalf("expected 2 key features, got %v", keyed.Features())
	}
	if keyed.NDocs() != 2 {
		t.Fatalf("expected document count unchanged, got %d", keyed.NDocs())
	}

	// d1: tax + taxes + budget = 3 economy, school = 1 social
	if got := keyed.At(0, 0); got != 3 {
		t.Errorf("expected d1 economy=3, got %f", got)
	}
	if got := keyed.At(0, 1); got != 1 {
		t.Errorf("expected d1 social=1, got %f", got)
	}
	// d2: funding + schools = 2 social, roads matches nothing
	if got := keyed.At(1, 1); got != 2 {
		t.Errorf("expected d2 social=2, got %f", got)
	}
	if got := keyed.At(1, 0); got != 0 {
		t.Errorf("expected d2 economy=0, got %f", got)
	}
}

func TestTotals(t *testing.T) {
	d, err := Parse([]byte(testDict))
	if err != nil {
		t.Fatal(err)
	}
	m := testDFM(t)

	totals := d.Totals(m)
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	if totals[0].Feature != "economy" || totals[0].Score != 3 {
		t.Errorf("expected economy=3, got %+v", totals[0])
	}
	if totals[1].Feature != "social" || totals[1].Score != 3 {
		t.Errorf("expected social=3, got %+v", totals[1])
	}
}
