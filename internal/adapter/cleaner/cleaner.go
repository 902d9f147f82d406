package cleaner

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reTag    = regexp.MustCompile(`<[^>]*>`)
	reEntity = regexp.MustCompile(`&[a-zA-Z#0-9]+;`)
	reSpace  = regexp.MustCompile(`\s+`)
)

// Sub is one compiled substitution applied during cleaning.
type Sub struct {
	re      *regexp.Regexp
	replace string
}

// Cleaner normalizes raw document text before tokenization. Substitutions
// run in the order given, then markup stripping, then whitespace collapse.
type Cleaner struct {
	stripHTML bool
	subs      []Sub
}

// New compiles the given pattern/replacement pairs into a Cleaner.
func New(stripHTML bool, patterns [][2]string) (*Cleaner, error) {
	subs := make([]Sub, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p[0])
		if err != nil {
			return nil, fmt.Errorf("invalid clean pattern %q: %w", p[0], err)
		}
		subs = append(subs, Sub{re: re, replace: p[1]})
	}
	return &Cleaner{stripHTML: stripHTML, subs: subs}, nil
}

// Clean applies every configured substitution to the text.
func (c *Cleaner) Clean(text string) string {
	for _, s := range c.subs {
		text = s.re.ReplaceAllString(text, s.replace)
	}
	if c.stripHTML {
		text = reTag.ReplaceAllString(text, " ")
		text = reEntity.ReplaceAllString(text, " ")
	}
	text = reSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
