// Package kwic implements keyword-in-context concordance search over
// tokenized documents.
package kwic

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"textkit/internal/domain"
)

// Locate scans every token stream for tokens matching the glob pattern and
// returns one match per hit with up to window tokens of context each side.
func Locate(streams []domain.TokenStream, pattern string, window int) ([]domain.KWICMatch, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	if window < 0 {
		window = 0
	}

	// validate once up front; Match only errors on bad patterns
	if _, err := doublestar.Match(pattern, "probe"); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	lowered := strings.ToLower(pattern)

	var matches []domain.KWICMatch
	for _, s := range streams {
		for pos, tok := range s.Tokens {
			ok, _ := doublestar.Match(lowered, strings.ToLower(tok))
			if !ok {
				continue
			}

			pre := pos - window
			if pre < 0 {
				pre = 0
			}
			post := pos + 1 + window
			if post > len(s.Tokens) {
				post = len(s.Tokens)
			}

			matches = append(matches, domain.KWICMatch{
				DocID:    s.DocID,
				Position: pos,
				Pre:      append([]string(nil), s.Tokens[pre:pos]...),
				Keyword:  tok,
				Post:     append([]string(nil), s.Tokens[pos+1:post]...),
			})
		}
	}

	return matches, nil
}

// Format renders one concordance line with the keyword set off in brackets.
func Format(m domain.KWICMatch) string {
	return fmt.Sprintf("%s: %s [%s] %s",
		m.DocID,
		strings.Join(m.Pre, " "),
		m.Keyword,
		strings.Join(m.Post, " "))
}
