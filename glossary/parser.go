package glossary

import (
	"strings"

	"github.com/teatak/glossary/util"
)

// Pair is one Chinese word extracted from a definition fragment together with
// the part-of-speech tag in effect when it was read. POS is empty when no tag
// preceded the word.
type Pair struct {
	Word string
	POS  string
}

// separators are dropped before classification. Matching is exact: " ;" or
// "; " with other spacing is not a separator.
var separators = map[string]struct{}{
	".":   {},
	",":   {},
	", ":  {},
	"; ":  {},
	";":   {},
	". ":  {},
	"...": {},
}

// TokenKind is how the parser sees a token.
type TokenKind int

const (
	KindOther       TokenKind = iota // dropped
	KindSeparator                    // one of the fixed ASCII separators, skipped
	KindPOS                          // Latin-alphabetic, becomes the current part of speech
	KindChinese                      // pure CJK, emitted
	KindPunctuation                  // full-width or CJK punctuation, dropped
)

func (k TokenKind) String() string {
	switch k {
	case KindSeparator:
		return "separator"
	case KindPOS:
		return "pos"
	case KindChinese:
		return "chinese"
	case KindPunctuation:
		return "punctuation"
	default:
		return "other"
	}
}

// Classify returns the kind of a single token.
func Classify(token string) TokenKind {
	switch {
	case isSeparator(token):
		return KindSeparator
	case isPOS(token):
		return KindPOS
	case util.IsAllCJK(token):
		return KindChinese
	case util.IsPunctuation(token):
		return KindPunctuation
	}
	return KindOther
}

func isSeparator(token string) bool {
	_, ok := separators[token]
	return ok
}

// isPOS: every rune is a letter and not every rune is a CJK ideograph.
func isPOS(token string) bool {
	return util.IsAlpha(token) && !util.IsAllCJK(token)
}

// parseState is the one piece of state carried across a fragment.
type parseState struct {
	pos string
}

// step consumes one token. The part-of-speech update and the Chinese check
// both run for the same token.
func step(st parseState, token string) (parseState, Pair, bool) {
	if isSeparator(token) {
		return st, Pair{}, false
	}
	if isPOS(token) {
		st.pos = token
	}
	if util.IsAllCJK(token) {
		return st, Pair{Word: strings.TrimSpace(token), POS: st.pos}, true
	}
	return st, Pair{}, false
}

// ExtractChineseWords reads the tokens of one definition fragment and returns
// the Chinese words in order, each tagged with the last Latin-alphabetic token
// seen before it.
//
//	ExtractChineseWords([]string{"vt", ".", "丢弃", "；", "放弃", "，", "抛弃"})
//	// [{丢弃 vt} {放弃 vt} {抛弃 vt}]
func ExtractChineseWords(tokens []string) []Pair {
	pairs := []Pair{}
	var st parseState
	for _, token := range tokens {
		var (
			p    Pair
			emit bool
		)
		st, p, emit = step(st, token)
		if emit {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// Words returns the Word of every pair.
func Words(pairs []Pair) []string {
	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.Word
	}
	return words
}
