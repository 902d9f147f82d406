package stats

import (
	"fmt"
	"math"
	"sort"

	"textkit/internal/dfm"
)

// Similarity methods.
const (
	SimCosine  = "cosine"
	SimJaccard = "jaccard"
)

// ScoredDoc is one neighbour in a similarity ranking.
type ScoredDoc struct {
	DocID string
	Score float64
}

// Neighbours ranks every other document of the matrix by similarity to the
// document with the given ID, highest first, keeping at most k.
func Neighbours(m *dfm.DFM, docID, method string, k int) ([]ScoredDoc, error) {
	i, ok := m.DocIndex(docID)
	if !ok {
		return nil, fmt.Errorf("document %q not in matrix", docID)
	}

	var sim func(a, b int) float64
	switch method {
	case SimCosine, "":
		sim = func(a, b int) float64 { return cosine(m, a, b) }
	case SimJaccard:
		sim = func(a, b int) float64 { return jaccard(m, a, b) }
	default:
		return nil, fmt.Errorf("unknown similarity method %q", method)
	}

	results := make([]ScoredDoc, 0, m.NDocs()-1)
	for other := 0; other < m.NDocs(); other++ {
		if other == i {
			continue
		}
		results = append(results, ScoredDoc{
			DocID: m.DocIDs()[other],
			Score: sim(i, other),
		})
	}

	sort.Slice(results, func(x, y int) bool {
		if results[x].Score != results[y].Score {
			return results[x].Score > results[y].Score
		}
		return results[x].DocID < results[y].DocID
	})

	if k > 0 && k < len(results) {
		results = results[:k]
	}
	return results, nil
}

func cosine(m *dfm.DFM, a, b int) float64 {
	rowB := make(map[int]float64)
	var normB float64
	m.DoRow(b, func(j int, v float64) {
		rowB[j] = v
		normB += v * v
	})

	var dot, normA float64
	m.DoRow(a, func(j int, v float64) {
		normA += v * v
		if w, ok := rowB[j]; ok {
			dot += v * w
		}
	})

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// jaccard treats rows as feature sets, ignoring cell magnitudes.
func jaccard(m *dfm.DFM, a, b int) float64 {
	setB := make(map[int]struct{})
	m.DoRow(b, func(j int, _ float64) {
		setB[j] = struct{}{}
	})

	var sizeA, inter int
	m.DoRow(a, func(j int, _ float64) {
		sizeA++
		if _, ok := setB[j]; ok {
			inter++
		}
	})

	union := sizeA + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
