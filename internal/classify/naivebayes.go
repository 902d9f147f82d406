// Package classify implements multinomial Naive Bayes classification over
// document-feature matrices.
package classify

import (
	"fmt"
	"math"
	"math/rand"

	"textkit/internal/dfm"
)

// Prior schemes.
const (
	PriorDocFreq = "docfreq"
	PriorUniform = "uniform"
)

// NaiveBayes is a multinomial Naive Bayes model fitted on a count DFM.
type NaiveBayes struct {
	smoothing float64
	prior     string

	classes  []string
	classIdx map[string]int
	featIdx  map[string]int
	logPrior []float64
	logCond  [][]float64 // class x feature log P(feature|class)
}

// NewNaiveBayes creates an unfitted model. smoothing <= 0 defaults to
// Laplace 1.0; prior defaults to docfreq.
func NewNaiveBayes(smoothing float64, prior string) *NaiveBayes {
	if smoothing <= 0 {
		smoothing = 1.0
	}
	if prior == "" {
		prior = PriorDocFreq
	}
	return &NaiveBayes{
		smoothing: smoothing,
		prior:     prior,
	}
}

// Classes returns the fitted class labels in first-seen order.
func (nb *NaiveBayes) Classes() []string { return nb.classes }

// Fit estimates priors and per-class feature likelihoods from the matrix
// and its row-aligned labels.
func (nb *NaiveBayes) Fit(m *dfm.DFM, labels []string) error {
	if len(labels) != m.NDocs() {
		return fmt.Errorf("labels length %d does not match %d documents", len(labels), m.NDocs())
	}
	if m.Weighting() != dfm.WeightCount {
		return fmt.Errorf("naive bayes requires a count matrix, got %q weighting", m.Weighting())
	}

	nb.classes = nil
	nb.classIdx = make(map[string]int)
	for _, l := range labels {
		if l == "" {
			return fmt.Errorf("empty class label")
		}
		if _, ok := nb.classIdx[l]; !ok {
			nb.classIdx[l] = len(nb.classes)
			nb.classes = append(nb.classes, l)
		}
	}
	if len(nb.classes) < 2 {
		return fmt.Errorf("need at least 2 classes, got %d", len(nb.classes))
	}

	nFeat := m.NFeatures()
	nb.featIdx = make(map[string]int, nFeat)
	for j, f := range m.Features() {
		nb.featIdx[f] = j
	}

	classDocs := make([]float64, len(nb.classes))
	classTotal := make([]float64, len(nb.classes))
	counts := make([][]float64, len(nb.classes))
	for c := range counts {
		counts[c] = make([]float64, nFeat)
	}

	for i := 0; i < m.NDocs(); i++ {
		c := nb.classIdx[labels[i]]
		classDocs[c]++
		m.DoRow(i, func(j int, v float64) {
			counts[c][j] += v
			classTotal[c] += v
		})
	}

	nb.logPrior = make([]float64, len(nb.classes))
	for c := range nb.classes {
		switch nb.prior {
		case PriorUniform:
			nb.logPrior[c] = -math.Log(float64(len(nb.classes)))
		case PriorDocFreq:
			nb.logPrior[c] = math.Log(classDocs[c] / float64(m.NDocs()))
		default:
			return fmt.Errorf("unknown prior %q", nb.prior)
		}
	}

	nb.logCond = make([][]float64, len(nb.classes))
	for c := range nb.classes {
		nb.logCond[c] = make([]float64, nFeat)
		denom := classTotal[c] + nb.smoothing*float64(nFeat)
		for j := 0; j < nFeat; j++ {
			nb.logCond[c][j] = math.Log((counts[c][j] + nb.smoothing) / denom)
		}
	}

	return nil
}

// LogProbs returns, per document of m, the unnormalized class log
// posteriors in class order. Features absent from training are skipped, so
// a document with no known features scores on priors alone.
func (nb *NaiveBayes) LogProbs(m *dfm.DFM) ([][]float64, error) {
	if nb.logCond == nil {
		return nil, fmt.Errorf("model is not fitted")
	}

	// map test columns onto training columns by feature name
	colMap := make([]int, m.NFeatures())
	for j, f := range m.Features() {
		if trained, ok := nb.featIdx[f]; ok {
			colMap[j] = trained
		} else {
			colMap[j] = -1
		}
	}

	out := make([][]float64, m.NDocs())
	for i := 0; i < m.NDocs(); i++ {
		scores := make([]float64, len(nb.classes))
		copy(scores, nb.logPrior)
		m.DoRow(i, func(j int, v float64) {
			trained := colMap[j]
			if trained < 0 {
				return
			}
			for c := range nb.classes {
				scores[c] += v * nb.logCond[c][trained]
			}
		})
		out[i] = scores
	}

	return out, nil
}

// Predict assigns each document of m its highest-posterior class.
func (nb *NaiveBayes) Predict(m *dfm.DFM) ([]string, error) {
	probs, err := nb.LogProbs(m)
	if err != nil {
		return nil, err
	}

	preds := make([]string, len(probs))
	for i, scores := range probs {
		best := 0
		for c := 1; c < len(scores); c++ {
			if scores[c] > scores[best] {
				best = c
			}
		}
		preds[i] = nb.classes[best]
	}
	return preds, nil
}

// Split shuffles document indices with the seed and cuts them at the train
// ratio. Both halves keep docvars aligned.
func Split(m *dfm.DFM, ratio float64, seed int64) (train, test *dfm.DFM, trainIdx, testIdx []int, err error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("train ratio must be in (0,1), got %f", ratio)
	}

	n := m.NDocs()
	if n < 2 {
		return nil, nil, nil, nil, fmt.Errorf("need at least 2 documents to split, got %d", n)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	cut := int(float64(n) * ratio)
	if cut < 1 {
		cut = 1
	}
	if cut >= n {
		cut = n - 1
	}

	trainIdx = append([]int(nil), perm[:cut]...)
	testIdx = append([]int(nil), perm[cut:]...)

	return m.Rows(trainIdx), m.Rows(testIdx), trainIdx, testIdx, nil
}
