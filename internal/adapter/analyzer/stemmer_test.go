package analyzer

import "testing"

func TestPorterStemmer_CommonForms(t *testing.T) {
	stemmer := NewPorterStemmer()

	cases := map[string]string{
		"caresses":   "caress",
		"ponies":     "poni",
		"cats":       "cat",
		"agreed":     "agree",
		"plastered":  "plaster",
		"motoring":   "motor",
		"happy":      "happi",
		"relational": "relat",
		"rational":   "ration",
		"electrical": "electr",
		"hopeful":    "hope",
		"goodness":   "good",
		"adjustment": "adjust",
		"probate":    "probat",
	}

	for word, want := range cases {
		got := stemmer.Stem(word)
		if got != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestPorterStemmer_ShortWordsUnchanged(t *testing.T) {
	stemmer := NewPorterStemmer()

	for _, word := range []string{"go", "is", "a"} {
		if got := stemmer.Stem(word); got != word {
			t.Errorf("Stem(%q) = %q, want unchanged", word, got)
		}
	}
}

func TestPorterStemmer_Deterministic(t *testing.T) {
	stemmer := NewPorterStemmer()

	first := stemmer.Stem("nationalization")
	for i := 0; i < 20; i++ {
		if got := stemmer.Stem("nationalization"); got != first {
			t.Fatalf("stemming is not deterministic: %q vs %q", got, first)
		}
	}
}
