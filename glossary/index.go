// Package glossary builds the English–Chinese glossary index from a flat word
// list and answers lookups in both directions.
//
// An Index is produced once by a Loader and never changes afterwards, so it
// may be shared by any number of concurrent readers.
package glossary

import (
	"maps"
	"slices"
	"strings"

	"github.com/teatak/glossary/util"
)

// Entry is one English headword of the glossary.
type Entry struct {
	Headword    string
	Definitions []string // raw definition fragments, in file order
	Words       []string // extracted Chinese words, repeats kept
}

// Index owns the three glossary mappings. Key slices record insertion order.
type Index struct {
	headwords []string
	entries   map[string]*Entry

	chineseKeys []string
	chinese     map[string][]string

	stats LoadStats
}

func newIndex() *Index {
	return &Index{
		entries: make(map[string]*Entry),
		chinese: make(map[string][]string),
	}
}

// add stores one parsed record. A repeated headword extends the earlier entry,
// keeping its position, so every back-reference in chinese stays backed by the
// entry's Words.
func (ix *Index) add(headword string, definitions []string, fragmentWords [][]string) {
	var words []string
	for _, fw := range fragmentWords {
		words = append(words, fw...)
	}

	e, ok := ix.entries[headword]
	if !ok {
		e = &Entry{Headword: headword}
		ix.entries[headword] = e
		ix.headwords = append(ix.headwords, headword)
	}
	e.Definitions = append(e.Definitions, definitions...)
	e.Words = append(e.Words, words...)

	for _, w := range words {
		if _, seen := ix.chinese[w]; !seen {
			ix.chineseKeys = append(ix.chineseKeys, w)
		}
		ix.chinese[w] = append(ix.chinese[w], headword)
	}
}

// Len returns the number of headwords.
func (ix *Index) Len() int {
	return len(ix.headwords)
}

// Headwords returns every headword in file order.
func (ix *Index) Headwords() []string {
	return slices.Clone(ix.headwords)
}

// ChineseKeys returns every distinct Chinese word in first-seen order.
func (ix *Index) ChineseKeys() []string {
	return slices.Clone(ix.chineseKeys)
}

// Stats returns the counters recorded while loading.
func (ix *Index) Stats() LoadStats {
	st := ix.stats
	st.DroppedTokens = maps.Clone(ix.stats.DroppedTokens)
	return st
}

// Define returns the raw definition fragments of headword.
func (ix *Index) Define(headword string) ([]string, error) {
	e, ok := ix.entries[headword]
	if !ok {
		return nil, &NotFoundError{Kind: "headword", Key: headword}
	}
	return slices.Clone(e.Definitions), nil
}

// ChineseWords returns the Chinese words extracted from headword's definitions.
func (ix *Index) ChineseWords(headword string) ([]string, error) {
	e, ok := ix.entries[headword]
	if !ok {
		return nil, &NotFoundError{Kind: "headword", Key: headword}
	}
	return slices.Clone(e.Words), nil
}

// EnglishFor returns the headwords whose definitions produced word, one per
// occurrence.
func (ix *Index) EnglishFor(word string) ([]string, error) {
	hws, ok := ix.chinese[word]
	if !ok {
		return nil, &NotFoundError{Kind: "chinese word", Key: word}
	}
	return slices.Clone(hws), nil
}

// SearchEnglish returns the headwords containing query, ignoring case.
// An empty query matches every headword.
func (ix *Index) SearchEnglish(query string) []string {
	q := strings.ToLower(query)
	found := []string{}
	for _, hw := range ix.headwords {
		if strings.Contains(strings.ToLower(hw), q) {
			found = append(found, hw)
		}
	}
	return found
}

// SearchChinese returns the Chinese words containing query.
func (ix *Index) SearchChinese(query string) []string {
	found := []string{}
	for _, w := range ix.chineseKeys {
		if strings.Contains(w, query) {
			found = append(found, w)
		}
	}
	return found
}

// Search matches term against both sides: headwords containing it first,
// then the English words of every Chinese word containing it.
func (ix *Index) Search(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	found := ix.SearchEnglish(term)
	for _, w := range ix.chineseKeys {
		if strings.Contains(strings.ToLower(w), term) {
			found = append(found, ix.chinese[w]...)
		}
	}
	return found
}

// Result is the answer to Lookup.
type Result struct {
	Word        string   `json:"word"`
	Definitions []string `json:"definitions,omitempty"` // set when Word is a headword
	English     []string `json:"english,omitempty"`     // set when Word is a Chinese word
}

// Lookup resolves word as a headword first and as a Chinese word otherwise.
func (ix *Index) Lookup(word string) (Result, error) {
	if defs, err := ix.Define(word); err == nil {
		return Result{Word: word, Definitions: defs}, nil
	}
	english, err := ix.EnglishFor(word)
	if err != nil {
		return Result{}, &NotFoundError{Kind: "word", Key: word}
	}
	return Result{Word: word, English: english}, nil
}

// LetterFrequency counts ASCII letters, folded to lower case, across all
// headwords. Other runes are ignored.
func (ix *Index) LetterFrequency() map[rune]int {
	freq := make(map[rune]int)
	for _, hw := range ix.headwords {
		for _, r := range hw {
			if util.IsASCIILetter(r) {
				freq[r|0x20]++
			}
		}
	}
	return freq
}

// LetterCount is one bar of the letter histogram.
type LetterCount struct {
	Letter rune
	Count  int
}

// SortedLetters orders a LetterFrequency result alphabetically.
func SortedLetters(freq map[rune]int) []LetterCount {
	out := make([]LetterCount, 0, len(freq))
	for r, n := range freq {
		out = append(out, LetterCount{Letter: r, Count: n})
	}
	slices.SortFunc(out, func(a, b LetterCount) int { return int(a.Letter - b.Letter) })
	return out
}
