// Package parser produces POS-tagged, entity-tagged and head-annotated
// token tables for natural-language sentences using prose for tokenizing,
// sentence segmentation and tagging.
package parser

import (
	"fmt"

	"github.com/jdkato/prose/v2"

	"textkit/internal/domain"
)

// Parser annotates documents sentence by sentence.
type Parser struct {
	extractEntities bool
}

func New(extractEntities bool) *Parser {
	return &Parser{extractEntities: extractEntities}
}

// Parse segments the text into sentences and annotates each token with its
// Penn tag, entity label and an approximate dependency head.
func (p *Parser) Parse(text string) ([]domain.ParsedSentence, error) {
	seg, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("sentence segmentation failed: %w", err)
	}

	var out []domain.ParsedSentence
	for _, sent := range seg.Sentences() {
		parsed, err := p.parseSentence(sent.Text)
		if err != nil {
			return nil, err
		}
		if len(parsed.Tokens) > 0 {
			out = append(out, parsed)
		}
	}

	return out, nil
}

func (p *Parser) parseSentence(text string) (domain.ParsedSentence, error) {
	opts := []prose.DocOpt{prose.WithSegmentation(false)}
	if !p.extractEntities {
		opts = append(opts, prose.WithExtraction(false))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return domain.ParsedSentence{}, fmt.Errorf("failed to parse %q: %w", text, err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]domain.ParsedToken, len(proseTokens))
	tags := make([]string, len(proseTokens))
	for i, tok := range proseTokens {
		tokens[i] = domain.ParsedToken{
			Index:  i,
			Text:   tok.Text,
			Tag:    tok.Tag,
			Entity: tok.Label,
		}
		tags[i] = tok.Tag
	}

	assignHeads(tokens, tags)

	return domain.ParsedSentence{Text: text, Tokens: tokens}, nil
}
