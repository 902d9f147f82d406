package stats

import (
	"testing"

	"textkit/internal/dfm"
	"textkit/internal/domain"
)

func skewedDFM(t *testing.T) *dfm.DFM {
	t.Helper()
	streams := []domain.TokenStream{
		{DocID: "r1", Tokens: []string{"tax", "tax", "tax", "cut", "shared"}},
		{DocID: "r2", Tokens: []string{"tax", "tax", "cut", "shared"}},
		{DocID: "b1", Tokens: []string{"school", "school", "funding", "shared"}},
		{DocID: "b2", Tokens: []string{"school", "funding", "funding", "shared"}},
	}
	vars := []map[string]string{
		{"party": "red"},
		{"party": "red"},
		{"party": "blue"},
		{"party": "blue"},
	}
	m, err := dfm.New(streams, vars)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestKeyness_Chi2(t *testing.T) {
	m := skewedDFM(t)

	results, err := Keyness(m, "party", "red", MeasureChi2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("expected keyness results")
	}

	// tax is exclusively red: it must head the target side
	if results[0].Feature != "tax" {
		t.Errorf("expected tax as top target feature, got %s", results[0].Feature)
	}
	if results[0].Stat <= 0 {
		t.Errorf("expected positive statistic for target feature, got %f", results[0].Stat)
	}
	if results[0].TargetN != 5 || results[0].ReferenceN != 0 {
		t.Errorf("unexpected counts: %+v", results[0])
	}

	// school is exclusively blue: it must sit at the reference end
	last := results[len(results)-1]
	if last.Feature != "school" && last.Feature != "funding" {
		t.Errorf("expected a blue feature last, got %s", last.Feature)
	}
	if last.Stat >= 0 {
		t.Errorf("expected negative statistic for reference feature, got %f", last.Stat)
	}

	for _, r := range results {
		if r.P < 0 || r.P > 1 {
			t.Errorf("p-value out of range for %s: %f", r.Feature, r.P)
		}
	}

	// a feature used evenly by both sides carries no signal
	for _, r := range results {
		if r.Feature == "shared" && r.P < 0.5 {
			t.Errorf("expected shared feature to be non-significant, p=%f", r.P)
		}
	}
}

func TestKeyness_LR(t *testing.T) {
	m := skewedDFM(t)

	results, err := Keyness(m, "party", "red", MeasureLR)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Feature != "tax" || results[0].Stat <= 0 {
		t.Errorf("expected tax with positive G2 first, got %+v", results[0])
	}
}

func TestKeyness_Errors(t *testing.T) {
	m := skewedDFM(t)

	if _, err := Keyness(m, "party", "green", MeasureChi2); err == nil {
		t.Error("expected error for empty target partition")
	}
	if _, err := Keyness(m, "party", "red", "tfidf"); err == nil {
		t.Error("expected error for unknown measure")
	}

	w, err := m.Weight(dfm.WeightTFIDF)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Keyness(w, "party", "red", MeasureChi2); err == nil {
		t.Error("expected error on weighted matrix")
	}
}
