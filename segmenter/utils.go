package segmenter

import "github.com/teatak/glossary/util"

type textBlock struct {
	runes          []rune
	isPureAlphaNum bool
}

// splitTextToBlocks groups runes into alternating runs of word runes
// (ASCII alphanumerics and CJK ideographs) and everything else.
func splitTextToBlocks(runes []rune) []textBlock {
	var blocks []textBlock
	if len(runes) == 0 {
		return blocks
	}

	current := []rune{runes[0]}
	inWord := isWordChar(runes[0])
	for _, r := range runes[1:] {
		if isWordChar(r) == inWord {
			current = append(current, r)
			continue
		}
		blocks = append(blocks, createBlock(current, inWord))
		current = []rune{r}
		inWord = !inWord
	}
	return append(blocks, createBlock(current, inWord))
}

func createBlock(runes []rune, word bool) textBlock {
	pure := word
	for _, r := range runes {
		if !util.IsASCIIAlphaNum(r) {
			pure = false
			break
		}
	}
	return textBlock{runes: runes, isPureAlphaNum: pure}
}

func isWordChar(r rune) bool {
	return util.IsASCIIAlphaNum(r) || util.IsCJK(r)
}
