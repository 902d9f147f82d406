package classify

import "fmt"

// Evaluation summarizes predictions against gold labels.
type Evaluation struct {
	Classes   []string
	Accuracy  float64
	Confusion map[string]map[string]int // actual -> predicted -> count
	Precision map[string]float64
	Recall    map[string]float64
}

// Evaluate compares predicted and actual labels pairwise.
func Evaluate(predicted, actual []string) (*Evaluation, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("predicted %d labels but %d gold labels given", len(predicted), len(actual))
	}
	if len(actual) == 0 {
		return nil, fmt.Errorf("nothing to evaluate")
	}

	var classes []string
	seen := make(map[string]struct{})
	addClass := func(c string) {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			classes = append(classes, c)
		}
	}
	for i := range actual {
		addClass(actual[i])
		addClass(predicted[i])
	}

	confusion := make(map[string]map[string]int, len(classes))
	for _, c := range classes {
		confusion[c] = make(map[string]int, len(classes))
	}

	correct := 0
	for i := range actual {
		confusion[actual[i]][predicted[i]]++
		if actual[i] == predicted[i] {
			correct++
		}
	}

	precision := make(map[string]float64, len(classes))
	recall := make(map[string]float64, len(classes))
	for _, c := range classes {
		tp := confusion[c][c]

		predTotal := 0
		for _, a := range classes {
			predTotal += confusion[a][c]
		}
		if predTotal > 0 {
			precision[c] = float64(tp) / float64(predTotal)
		}

		actTotal := 0
		for _, p := range classes {
			actTotal += confusion[c][p]
		}
		if actTotal > 0 {
			recall[c] = float64(tp) / float64(actTotal)
		}
	}

	return &Evaluation{
		Classes:   classes,
		Accuracy:  float64(correct) / float64(len(actual)),
		Confusion: confusion,
		Precision: precision,
		Recall:    recall,
	}, nil
}
