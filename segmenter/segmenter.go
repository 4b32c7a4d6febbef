// Package segmenter splits Chinese (or mixed-script) text into word tokens.
package segmenter

import (
	"fmt"
	"math"
	"strings"

	"github.com/teatak/glossary/crf"
	"github.com/teatak/glossary/dictionary"
	"github.com/teatak/glossary/util"
)

// Mode defines the segmentation mode.
type Mode int

const (
	ModeDAG    Mode = iota // ModeDAG uses dictionary-based DAG segmentation.
	ModeCRF                // ModeCRF uses pure CRF model-based segmentation.
	ModeHybrid             // ModeHybrid uses the dictionary first, then CRF for OOV runs.
)

func (m Mode) String() string {
	switch m {
	case ModeCRF:
		return "crf"
	case ModeHybrid:
		return "hybrid"
	default:
		return "dag"
	}
}

// ParseMode resolves a mode name ("dag", "crf", "hybrid"), case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dag":
		return ModeDAG, nil
	case "crf":
		return ModeCRF, nil
	case "hybrid":
		return ModeHybrid, nil
	}
	return ModeDAG, fmt.Errorf("segmenter: unknown mode %q", s)
}

// Segmenter handles the text segmentation.
type Segmenter struct {
	Dict     *dictionary.Dictionary
	CRFModel *crf.Model
	// Mode is used by Segment.
	Mode Mode
}

// NewSegmenter creates a DAG segmenter over dict. A nil dict is treated as empty.
func NewSegmenter(dict *dictionary.Dictionary) *Segmenter {
	if dict == nil {
		dict = dictionary.NewDictionary()
	}
	return &Segmenter{Dict: dict, Mode: ModeDAG}
}

// Segment cuts text with the segmenter's configured Mode.
func (s *Segmenter) Segment(text string) []string {
	return s.Cut(text, s.Mode)
}

// Cut segments the text into a slice of strings using the specified mode (defaults to ModeDAG).
// Runs of ASCII letters and digits are always kept whole, so "vt.丢弃" cuts to
// "vt", ".", "丢弃".
func (s *Segmenter) Cut(text string, modes ...Mode) []string {
	mode := ModeDAG
	if len(modes) > 0 {
		mode = modes[0]
	}
	if s.CRFModel == nil {
		mode = ModeDAG
	}

	result := []string{}
	for _, block := range splitTextToBlocks([]rune(text)) {
		if block.isPureAlphaNum {
			result = append(result, string(block.runes))
			continue
		}
		switch mode {
		case ModeCRF:
			result = append(result, s.decodeCRFBlock(block.runes)...)
		case ModeHybrid:
			result = append(result, s.cutHybrid(block.runes)...)
		default:
			result = append(result, s.cutDAG(block.runes)...)
		}
	}
	return result
}

// cutDAG picks the maximum log-probability path through every dictionary word
// found in runes.
func (s *Segmenter) cutDAG(runes []rune) []string {
	n := len(runes)
	if n == 0 {
		return nil
	}

	// 1. Build DAG: dag[i] lists inclusive end indices of candidate words starting at i.
	dag := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i; j < n && j-i+1 <= s.Dict.MaxLen; j++ {
			if s.Dict.Contains(string(runes[i : j+1])) {
				dag[i] = append(dag[i], j)
			}
		}

		// Keep an alphanumeric run whole even when the dictionary lacks it.
		if util.IsASCIIAlphaNum(runes[i]) {
			j := i
			for j < n && util.IsASCIIAlphaNum(runes[j]) {
				j++
			}
			if !containsInt(dag[i], j-1) {
				dag[i] = append(dag[i], j-1)
			}
		}

		// The single rune is always a fallback candidate.
		if len(dag[i]) == 0 {
			dag[i] = append(dag[i], i)
		}
	}

	// 2. Best path from the right.
	type routeNode struct {
		prob float64
		end  int
	}
	route := make([]routeNode, n+1)
	for i := n - 1; i >= 0; i-- {
		best := routeNode{prob: -math.MaxFloat64, end: i}
		for _, end := range dag[i] {
			prob := s.Dict.LogProbability(string(runes[i:end+1])) + route[end+1].prob
			if prob > best.prob {
				best = routeNode{prob: prob, end: end}
			}
		}
		route[i] = best
	}

	// 3. Walk the route.
	var result []string
	for idx := 0; idx < n; {
		end := route[idx].end
		result = append(result, string(runes[idx:end+1]))
		idx = end + 1
	}
	return result
}

// cutHybrid trusts multi-rune dictionary words and re-decodes the runs of
// single runes between them with the CRF model.
func (s *Segmenter) cutHybrid(runes []rune) []string {
	var result []string
	var buf []rune

	flush := func() {
		if len(buf) == 0 {
			return
		}
		result = append(result, s.decodeCRFBlock(buf)...)
		buf = nil
	}

	for _, token := range s.cutDAG(runes) {
		r := []rune(token)
		if len(r) > 1 {
			flush()
			result = append(result, token)
			continue
		}
		// Punctuation never joins a word.
		if util.IsPunct(r[0]) {
			flush()
			result = append(result, token)
			continue
		}
		buf = append(buf, r...)
	}
	flush()
	return result
}

// decodeCRFBlock turns the model's B/M/E/S tags over runes into words.
func (s *Segmenter) decodeCRFBlock(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}
	var res []string
	var buf []rune
	for i, tag := range s.CRFModel.Decode(runes) {
		r := runes[i]
		switch tag {
		case crf.TagB:
			if len(buf) > 0 {
				res = append(res, string(buf))
			}
			buf = []rune{r}
		case crf.TagM:
			buf = append(buf, r)
		case crf.TagE:
			buf = append(buf, r)
			res = append(res, string(buf))
			buf = nil
		case crf.TagS:
			if len(buf) > 0 {
				res = append(res, string(buf))
				buf = nil
			}
			res = append(res, string(r))
		}
	}
	if len(buf) > 0 {
		res = append(res, string(buf))
	}
	return res
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
