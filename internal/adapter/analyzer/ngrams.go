package analyzer

import "strings"

// NGrams joins each run of n consecutive tokens with the concatenator.
// n < 2 returns the input unchanged.
func NGrams(tokens []string, n int, concatenator string) []string {
	if n < 2 || len(tokens) < n {
		if n < 2 {
			return tokens
		}
		return nil
	}
	if concatenator == "" {
		concatenator = "_"
	}

	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], concatenator))
	}
	return grams
}

// NGramRange builds every n-gram for n in [min, max] and returns them in
// ascending n order. min of 1 includes the original tokens.
func NGramRange(tokens []string, min, max int, concatenator string) []string {
	if min < 1 {
		min = 1
	}
	var out []string
	for n := min; n <= max; n++ {
		out = append(out, NGrams(tokens, n, concatenator)...)
	}
	return out
}
