package crf

// boundary stands in for characters before the start or past the end.
const boundary = "_BOS_"

// ExtractFeatures generates feature strings for the rune at idx.
//
//	U00: x[i-2]  U01: x[i-1]  U02: x[i]  U03: x[i+1]  U04: x[i+2]
func ExtractFeatures(runes []rune, idx int) []string {
	at := func(offset int) string {
		pos := idx + offset
		if pos < 0 || pos >= len(runes) {
			return boundary
		}
		return string(runes[pos])
	}

	return []string{
		"U00:" + at(-2),
		"U01:" + at(-1),
		"U02:" + at(0),
		"U03:" + at(1),
		"U04:" + at(2),
	}
}
