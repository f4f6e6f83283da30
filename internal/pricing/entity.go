package pricing

import (
	"regexp"
	"sync"
)

// Label matching walks the vocabulary in declared order and returns the first
// entry whose literal form occurs anywhere in the text, case-insensitively.
// Declared order is the tie-break: an earlier entry beats a later one even if
// the later one appears first in the text.

var (
	labelPatternMu sync.Mutex
	labelPatterns  = map[string]*regexp.Regexp{}
)

func labelPattern(term string) *regexp.Regexp {
	labelPatternMu.Lock()
	defer labelPatternMu.Unlock()
	if p, ok := labelPatterns[term]; ok {
		return p
	}
	p := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	labelPatterns[term] = p
	return p
}

// ExtractLabel returns the matched vocabulary entry and fromText=true, or a
// uniform random vocabulary pick and fromText=false when nothing matches.
// The result is always a member of the vocabulary.
func (e *Extractor) ExtractLabel(text string, vocabulary []string) (label string, fromText bool) {
	if len(vocabulary) == 0 {
		return "", false
	}
	if text != "" {
		for _, term := range vocabulary {
			if labelPattern(term).MatchString(text) {
				return term, true
			}
		}
	}
	return vocabulary[e.rng.Intn(len(vocabulary))], false
}
