package classify

import (
	"testing"

	"textkit/internal/dfm"
	"textkit/internal/domain"
)

// small, cleanly separable two-class corpus
func separableDFM(t *testing.T) (*dfm.DFM, []string) {
	t.Helper()
	streams := []domain.TokenStream{
		{DocID: "e1", Tokens: []string{"tax", "budget", "deficit"}},
		{DocID: "e2", Tokens: []string{"tax", "spending", "budget"}},
		{DocID: "e3", Tokens: []string{"deficit", "spending", "tax"}},
		{DocID: "s1", Tokens: []string{"match", "goal", "team"}},
		{DocID: "s2", Tokens: []string{"goal", "season", "match"}},
		{DocID: "s3", Tokens: []string{"team", "season", "goal"}},
	}
	labels := []string{"economy", "economy", "economy", "sport", "sport", "sport"}

	m, err := dfm.New(streams, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m, labels
}

func TestNaiveBayes_FitPredict(t *testing.T) {
	m, labels := separableDFM(t)

	nb := NewNaiveBayes(1.0, PriorDocFreq)
	if err := nb.Fit(m, labels); err != nil {
		t.Fatal(err)
	}

	preds, err := nb.Predict(m)
	if err != nil {
		t.Fatal(err)
	}

	for i, p := range preds {
		if p != labels[i] {
			t.Errorf("doc %d: predicted %s, want %s", i, p, labels[i])
		}
	}
}

func TestNaiveBayes_UnseenDocumentFallsBackToPrior(t *testing.T) {
	m, labels := separableDFM(t)

	nb := NewNaiveBayes(1.0, PriorDocFreq)
	if err := nb.Fit(m, labels); err != nil {
		t.Fatal(err)
	}

	// a document with only unseen features scores on priors alone
	unseen, err := dfm.New([]domain.TokenStream{
		{DocID: "x1", Tokens: []string{"zebra", "quark"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	probs, err := nb.LogProbs(unseen)
	if err != nil {
		t.Fatal(err)
	}
	if len(probs) != 1 || len(probs[0]) != 2 {
		t.Fatalf("unexpected probs shape: %v", probs)
	}
	// balanced priors: both scores equal
	if probs[0][0] != probs[0][1] {
		t.Errorf("expected equal prior-only scores, got %v", probs[0])
	}
}

func TestNaiveBayes_SingleClassRejected(t *testing.T) {
	m, _ := separableDFM(t)
	labels := []string{"a", "a", "a", "a", "a", "a"}

	nb := NewNaiveBayes(1.0, PriorDocFreq)
	if err := nb.Fit(m, labels); err == nil {
		t.Error("expected error for single-class fit")
	}
}

func TestNaiveBayes_WeightedMatrixRejected(t *testing.T) {
	m, labels := separableDFM(t)
	w, err := m.Weight(dfm.WeightTFIDF)
	if err != nil {
		t.Fatal(err)
	}

	nb := NewNaiveBayes(1.0, PriorDocFreq)
	if err := nb.Fit(w, labels); err == nil {
		t.Error("expected error fitting on a weighted matrix")
	}
}

func TestSplit(t *testing.T) {
	m, _ := separableDFM(t)

	train, test, trainIdx, testIdx, err := Split(m, 0.5, 42)
	if err != nil {
		t.Fatal(err)
	}

	if train.NDocs()+test.NDocs() != m.NDocs() {
		t.Errorf("split lost documents: %d + %d != %d", train.NDocs(), test.NDocs(), m.NDocs())
	}
	if len(trainIdx) != train.NDocs() || len(testIdx) != test.NDocs() {
		t.Error("index slices out of step with matrices")
	}

	// same seed reproduces the split
	_, _, trainIdx2, _, err := Split(m, 0.5, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := range trainIdx {
		if trainIdx[i] != trainIdx2[i] {
			t.Fatal("expected reproducible split for equal seeds")
		}
	}
}

func TestSplit_BadRatio(t *testing.T) {
	m, _ := separableDFM(t)
	if _, _, _, _, err := Split(m, 1.5, 1); err == nil {
		t.Error("expected error for ratio > 1")
	}
}

func TestSplit_TooFewDocuments(t *testing.T) {
	empty, err := dfm.New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, _, err := Split(empty, 0.8, 1); err == nil {
		t.Error("expected error for empty matrix")
	}

	one, err := dfm.New([]domain.TokenStream{
		{DocID: "only", Tokens: []string{"alone"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, _, err := Split(one, 0.8, 1); err == nil {
		t.Error("expected error for single-document matrix")
	}
}

func TestEvaluate(t *testing.T) {
	actual := []string{"a", "a", "b", "b"}
	predicted := []string{"a", "b", "b", "b"}

	ev, err := Evaluate(predicted, actual)
	if err != nil {
		t.Fatal(err)
	}

	if ev.Accuracy != 0.75 {
		t.Errorf("expected accuracy 0.75, got %f", ev.Accuracy)
	}
	if ev.Confusion["a"]["b"] != 1 {
		t.Errorf("expected one a->b confusion, got %d", ev.Confusion["a"]["b"])
	}
	if ev.Recall["a"] != 0.5 {
		t.Errorf("expected recall(a)=0.5, got %f", ev.Recall["a"])
	}
	if ev.Precision["b"] != 2.0/3.0 {
		t.Errorf("expected precision(b)=2/3, got %f", ev.Precision["b"])
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	if _, err := Evaluate([]string{"a"}, []string{"a", "b"}); err == nil {
		t.Error("expected error for length mismatch")
	}
}
