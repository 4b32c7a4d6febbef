// Package export writes a loaded glossary back out in flat text formats: a
// headword-to-words table and a segmentation dictionary seeded from the
// glossary's own Chinese vocabulary.
package export

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/teatak/glossary/glossary"
)

// WordCount is one dictionary line.
type WordCount struct {
	Word  string
	Count int
}

// WordCounts counts, for every Chinese word of ix, how many times a headword
// produced it. Words shorter than minRunes are skipped. The result is ordered
// by count, highest first, then by word.
func WordCounts(ix *glossary.Index, minRunes int) []WordCount {
	var out []WordCount
	for _, w := range ix.ChineseKeys() {
		if utf8.RuneCountInString(w) < minRunes {
			continue
		}
		english, err := ix.EnglishFor(w)
		if err != nil {
			continue
		}
		out = append(out, WordCount{Word: w, Count: len(english)})
	}
	slices.SortFunc(out, func(a, b WordCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

// WriteDictionary writes counts as "word freq" lines, the format read by
// dictionary.Read.
func WriteDictionary(w io.Writer, counts []WordCount) error {
	bw := bufio.NewWriter(w)
	for _, c := range counts {
		fmt.Fprintf(bw, "%s %d\n", c.Word, c.Count)
	}
	return bw.Flush()
}

// WriteIndex writes one "headword<TAB>word word ..." line per headword in
// file order. Headwords without Chinese words get an empty second column.
func WriteIndex(w io.Writer, ix *glossary.Index) error {
	bw := bufio.NewWriter(w)
	for _, hw := range ix.Headwords() {
		words, err := ix.ChineseWords(hw)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s\t%s\n", hw, strings.Join(words, " "))
	}
	return bw.Flush()
}
