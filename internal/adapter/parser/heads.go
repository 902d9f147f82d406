package parser

import (
	"strings"

	"textkit/internal/domain"
)

// assignHeads attaches each token to an approximate governor using its
// Penn tag. The scheme is a shallow rule pass, not a full parse: the first
// finite verb roots the sentence, modifiers attach to the nearest suitable
// neighbour, and everything else falls back to the root.
func assignHeads(tokens []domain.ParsedToken, tags []string) {
	n := len(tokens)
	if n == 0 {
		return
	}

	root := findRoot(tags)
	tokens[root].Head = -1
	tokens[root].Rel = "root"

	for i := range tokens {
		if i == root {
			continue
		}

		tag := tags[i]
		switch {
		case strings.HasPrefix(tag, "DT") || tag == "PDT" || tag == "PRP$":
			if h := nextNoun(tags, i); h >= 0 {
				tokens[i].Head = h
				tokens[i].Rel = "det"
				continue
			}
		case strings.HasPrefix(tag, "JJ"):
			if h := nextNoun(tags, i); h >= 0 {
				tokens[i].Head = h
				tokens[i].Rel = "amod"
				continue
			}
		case strings.HasPrefix(tag, "NN") || tag == "PRP":
			if i+1 < n && strings.HasPrefix(tags[i+1], "NN") {
				tokens[i].Head = i + 1
				tokens[i].Rel = "compound"
				continue
			}
			if h := prevTag(tags, i, "IN", "TO"); h >= 0 && h > root {
				tokens[i].Head = h
				tokens[i].Rel = "pobj"
				continue
			}
			tokens[i].Head = root
			if i < root {
				tokens[i].Rel = "nsubj"
			} else {
				tokens[i].Rel = "obj"
			}
			continue
		case tag == "IN" || tag == "TO":
			if h := prevHead(tags, i, root); h >= 0 {
				tokens[i].Head = h
				tokens[i].Rel = "prep"
				continue
			}
		case strings.HasPrefix(tag, "RB"):
			tokens[i].Head = root
			tokens[i].Rel = "advmod"
			continue
		case tag == "MD":
			tokens[i].Head = root
			tokens[i].Rel = "aux"
			continue
		case strings.HasPrefix(tag, "VB"):
			tokens[i].Head = root
			if i < root {
				tokens[i].Rel = "aux"
			} else {
				tokens[i].Rel = "conj"
			}
			continue
		case tag == "CC":
			tokens[i].Head = root
			tokens[i].Rel = "cc"
			continue
		case isPunctTag(tag):
			tokens[i].Head = root
			tokens[i].Rel = "punct"
			continue
		}

		tokens[i].Head = root
		tokens[i].Rel = "dep"
	}
}

// findRoot picks the first finite verb, else the first noun, else token 0.
func findRoot(tags []string) int {
	for i, tag := range tags {
		if strings.HasPrefix(tag, "VB") && tag != "VBG" {
			return i
		}
	}
	for i, tag := range tags {
		if strings.HasPrefix(tag, "NN") {
			return i
		}
	}
	return 0
}

func nextNoun(tags []string, from int) int {
	for i := from + 1; i < len(tags); i++ {
		if strings.HasPrefix(tags[i], "NN") {
			return i
		}
	}
	return -1
}

// prevTag finds the nearest preceding token carrying one of the tags.
func prevTag(tags []string, from int, want ...string) int {
	for i := from - 1; i >= 0; i-- {
		for _, w := range want {
			if tags[i] == w {
				return i
			}
		}
	}
	return -1
}

// prevHead finds the nearest preceding verb or noun for a preposition,
// falling back to the root.
func prevHead(tags []string, from, root int) int {
	for i := from - 1; i >= 0; i-- {
		if strings.HasPrefix(tags[i], "VB") || strings.HasPrefix(tags[i], "NN") {
			return i
		}
	}
	return root
}

func isPunctTag(tag string) bool {
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "-LRB-", "-RRB-":
		return true
	}
	return false
}
