package crf

import (
	"math"
)

// Decode performs Viterbi decoding to find the best tag sequence.
func (m *Model) Decode(runes []rune) []Tag {
	n := len(runes)
	if n == 0 {
		return []Tag{}
	}

	// dp[i][tag] = best score of a path ending at i with tag
	dp := make([][numTags]float64, n)
	// back[i][tag] = previous tag on that path
	back := make([][numTags]Tag, n)

	// No start state: position 0 is scored by emission only.
	for tag := Tag(0); tag < numTags; tag++ {
		dp[0][tag] = m.emission(runes, 0, tag)
	}

	for i := 1; i < n; i++ {
		for curr := Tag(0); curr < numTags; curr++ {
			best := -math.MaxFloat64
			var bestPrev Tag
			emission := m.emission(runes, i, curr)
			for prev := Tag(0); prev < numTags; prev++ {
				score := dp[i-1][prev] + m.Trans[prev][curr] + emission
				if score > best {
					best = score
					bestPrev = prev
				}
			}
			dp[i][curr] = best
			back[i][curr] = bestPrev
		}
	}

	best := -math.MaxFloat64
	var last Tag
	for tag := Tag(0); tag < numTags; tag++ {
		if dp[n-1][tag] > best {
			best = dp[n-1][tag]
			last = tag
		}
	}

	tags := make([]Tag, n)
	tags[n-1] = last
	for i := n - 1; i > 0; i-- {
		tags[i-1] = back[i][tags[i]]
	}
	return tags
}

func (m *Model) emission(runes []rune, idx int, tag Tag) float64 {
	score := 0.0
	for _, feat := range ExtractFeatures(runes, idx) {
		if w, ok := m.Feats[feat][tag]; ok {
			score += w
		}
	}
	return score
}
