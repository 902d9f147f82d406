package parser

import (
	"testing"

	"textkit/internal/domain"
)

func tokensFor(words, tags []string) []domain.ParsedToken {
	tokens := make([]domain.ParsedToken, len(words))
	for i, w := range words {
		tokens[i] = domain.ParsedToken{Index: i, Text: w, Tag: tags[i]}
	}
	return tokens
}

func TestAssignHeads_SimpleClause(t *testing.T) {
	words := []string{"The", "dog", "chased", "the", "cat", "."}
	tags := []string{"DT", "NN", "VBD", "DT", "NN", "."}
	tokens := tokensFor(words, tags)

	assignHeads(tokens, tags)

	// chased roots the sentence
	if tokens[2].Head != -1 || tokens[2].Rel != "root" {
		t.Errorf("expected chased as root, got %+v", tokens[2])
	}
	// determiners attach to their nouns
	if tokens[0].Head != 1 || tokens[0].Rel != "det" {
		t.Errorf("expected The->dog det, got %+v", tokens[0])
	}
	if tokens[3].Head != 4 || tokens[3].Rel != "det" {
		t.Errorf("expected the->cat det, got %+v", tokens[3])
	}
	// subject before the verb, object after
	if tokens[1].Head != 2 || tokens[1].Rel != "nsubj" {
		t.Errorf("expected dog->chased nsubj, got %+v", tokens[1])
	}
	if tokens[4].Head != 2 || tokens[4].Rel != "obj" {
		t.Errorf("expected cat->chased obj, got %+v", tokens[4])
	}
	// punctuation hangs off the root
	if tokens[5].Head != 2 || tokens[5].Rel != "punct" {
		t.Errorf("expected .->chased punct, got %+v", tokens[5])
	}
}

func TestAssignHeads_PrepositionalPhrase(t *testing.T) {
	words := []string{"She", "sat", "on", "the", "chair"}
	tags := []string{"PRP", "VBD", "IN", "DT", "NN"}
	tokens := tokensFor(words, tags)

	assignHeads(tokens, tags)

	if tokens[2].Head != 1 || tokens[2].Rel != "prep" {
		t.Errorf("expected on->sat prep, got %+v", tokens[2])
	}
	if tokens[4].Head != 2 || tokens[4].Rel != "pobj" {
		t.Errorf("expected chair->on pobj, got %+v", tokens[4])
	}
}

func TestAssignHeads_Adjective(t *testing.T) {
	words := []string{"Big", "banks", "failed"}
	tags := []string{"JJ", "NNS", "VBD"}
	tokens := tokensFor(words, tags)

	assignHeads(tokens, tags)

	if tokens[0].Head != 1 || tokens[0].Rel != "amod" {
		t.Errorf("expected Big->banks amod, got %+v", tokens[0])
	}
	if tokens[1].Head != 2 || tokens[1].Rel != "nsubj" {
		t.Errorf("expected banks->failed nsubj, got %+v", tokens[1])
	}
}

func TestAssignHeads_NoVerbFallsBackToNoun(t *testing.T) {
	words := []string{"Great", "news"}
	tags := []string{"JJ", "NN"}
	tokens := tokensFor(words, tags)

	assignHeads(tokens, tags)

	if tokens[1].Head != -1 || tokens[1].Rel != "root" {
		t.Errorf("expected news as root, got %+v", tokens[1])
	}
	if tokens[0].Head != 1 {
		t.Errorf("expected Great->news, got %+v", tokens[0])
	}
}

func TestAssignHeads_Compound(t *testing.T) {
	words := []string{"tax", "cuts", "passed"}
	tags := []string{"NN", "NNS", "VBD"}
	tokens := tokensFor(words, tags)

	assignHeads(tokens, tags)

	if tokens[0].Head != 1 || tokens[0].Rel != "compound" {
		t.Errorf("expected tax->cuts compound, got %+v", tokens[0])
	}
}

func TestAssignHeads_Empty(t *testing.T) {
	assignHeads(nil, nil) // must not panic
}
