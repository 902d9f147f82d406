package analyzer

// englishStopwords returns a fresh set of common English function words.
// Callers may extend the returned map with their own entries.
func englishStopwords() map[string]struct{} {
	stops := []string{
		// articles, conjunctions, prepositions
		"a", "an", "and", "as", "at", "but", "by", "for", "from",
		"if", "in", "into", "of", "on", "or", "over", "so", "than",
		"to", "under", "until", "upon", "with", "without",
		// pronouns
		"he", "her", "hers", "him", "his", "i", "it", "its", "me",
		"my", "our", "ours", "she", "their", "theirs", "them", "they",
		"us", "we", "you", "your", "yours", "who", "whom", "whose",
		// auxiliaries and copulas
		"am", "are", "be", "been", "being", "can", "could", "did",
		"do", "does", "had", "has", "have", "is", "may", "might",
		"must", "shall", "should", "was", "were", "will", "would",
		// demonstratives and determiners
		"the", "this", "that", "these", "those", "all", "any", "both",
		"each", "every", "few", "more", "most", "no", "not", "other",
		"some", "such",
		// adverbs and misc high-frequency words
		"again", "also", "here", "how", "just", "now", "only", "out",
		"then", "there", "too", "very", "what", "when", "where",
		"which", "while", "why", "yet",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}

// EnglishStopwords returns the built-in stopword list as a slice, for
// callers that need it in list form (vectorisers, reports).
func EnglishStopwords() []string {
	set := englishStopwords()
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	return out
}
