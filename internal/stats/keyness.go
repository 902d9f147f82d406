// Package stats provides corpus statistics: keyness of features between
// document partitions and document-document similarity.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"textkit/internal/dfm"
	"textkit/internal/domain"
)

// Keyness measures.
const (
	MeasureChi2 = "chi2"
	MeasureLR   = "lr"
)

// Keyness compares feature frequencies between the documents whose docvar
// equals target (the target partition) and all others (the reference).
// Results are sorted by statistic, target-favoring features first.
func Keyness(m *dfm.DFM, varName, target, measure string) ([]domain.KeynessResult, error) {
	if measure == "" {
		measure = MeasureChi2
	}
	if measure != MeasureChi2 && measure != MeasureLR {
		return nil, fmt.Errorf("unknown keyness measure %q", measure)
	}
	if m.Weighting() != dfm.WeightCount {
		return nil, fmt.Errorf("keyness requires a count matrix, got %q weighting", m.Weighting())
	}

	inTarget := make([]bool, m.NDocs())
	nTarget := 0
	for i := 0; i < m.NDocs(); i++ {
		if m.Var(i, varName) == target {
			inTarget[i] = true
			nTarget++
		}
	}
	if nTarget == 0 {
		return nil, fmt.Errorf("no documents with %s=%q", varName, target)
	}
	if nTarget == m.NDocs() {
		return nil, fmt.Errorf("all documents have %s=%q, nothing to compare against", varName, target)
	}

	tgt := make([]float64, m.NFeatures())
	ref := make([]float64, m.NFeatures())
	var tgtTotal, refTotal float64

	m.Matrix().DoNonZero(func(i, j int, v float64) {
		if inTarget[i] {
			tgt[j] += v
			tgtTotal += v
		} else {
			ref[j] += v
			refTotal += v
		}
	})

	if tgtTotal == 0 || refTotal == 0 {
		return nil, fmt.Errorf("a partition has no tokens")
	}

	chi2 := distuv.ChiSquared{K: 1}
	features := m.Features()
	results := make([]domain.KeynessResult, 0, len(features))

	for j, f := range features {
		a, b := tgt[j], ref[j]
		if a+b == 0 {
			continue
		}

		var stat float64
		switch measure {
		case MeasureChi2:
			stat = yatesChi2(a, b, tgtTotal-a, refTotal-b)
		case MeasureLR:
			stat = logLikelihood(a, b, tgtTotal, refTotal)
		}

		p := chi2.Survival(stat)

		// direction: positive when the target over-uses the feature
		if a/tgtTotal < b/refTotal {
			stat = -stat
		}

		results = append(results, domain.KeynessResult{
			Feature:    f,
			Stat:       stat,
			P:          p,
			TargetN:    int(a),
			ReferenceN: int(b),
		})
	}

	sort.Slice(results, func(x, y int) bool {
		if results[x].Stat != results[y].Stat {
			return results[x].Stat > results[y].Stat
		}
		return results[x].Feature < results[y].Feature
	})

	return results, nil
}

// yatesChi2 computes the 2x2 chi-squared statistic with Yates continuity
// correction. a,b are target/reference counts of the feature; c,d the
// remaining token mass of each partition.
func yatesChi2(a, b, c, d float64) float64 {
	n := a + b + c + d
	diff := math.Abs(a*d-b*c) - n/2
	if diff < 0 {
		diff = 0
	}
	denom := (a + b) * (c + d) * (a + c) * (b + d)
	if denom == 0 {
		return 0
	}
	return n * diff * diff / denom
}

// logLikelihood computes the G2 statistic for one feature against the two
// partition totals.
func logLikelihood(a, b, tgtTotal, refTotal float64) float64 {
	e1 := tgtTotal * (a + b) / (tgtTotal + refTotal)
	e2 := refTotal * (a + b) / (tgtTotal + refTotal)

	g2 := 0.0
	if a > 0 && e1 > 0 {
		g2 += a * math.Log(a/e1)
	}
	if b > 0 && e2 > 0 {
		g2 += b * math.Log(b/e2)
	}
	return 2 * g2
}
