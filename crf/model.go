// Package crf decodes B/M/E/S word-boundary tags with a linear-chain CRF.
// The segmenter uses it for runs the dictionary does not cover.
package crf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tag is a per-rune word boundary label.
type Tag int

// Tag constants
const (
	TagB Tag = iota // Begin
	TagM            // Middle
	TagE            // End
	TagS            // Single

	numTags = 4
)

func (t Tag) String() string {
	switch t {
	case TagB:
		return "B"
	case TagM:
		return "M"
	case TagE:
		return "E"
	case TagS:
		return "S"
	}
	return "?"
}

// ParseTag converts "B", "M", "E" or "S" to a Tag.
func ParseTag(s string) (Tag, bool) {
	switch s {
	case "B":
		return TagB, true
	case "M":
		return TagM, true
	case "E":
		return TagE, true
	case "S":
		return TagS, true
	}
	return 0, false
}

// Model represents a Linear Chain CRF model.
type Model struct {
	// Trans[from][to] = weight
	Trans [numTags][numTags]float64
	// Feats[feature][tag] = weight, feature strings as built by ExtractFeatures.
	Feats map[string]map[Tag]float64
}

// NewModel creates a new empty model.
func NewModel() *Model {
	return &Model{
		Feats: make(map[string]map[Tag]float64),
	}
}

// Load reads a text model file.
func (m *Model) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("crf: open %s: %w", path, err)
	}
	defer file.Close()

	if err := m.Read(file); err != nil {
		return fmt.Errorf("crf: read %s: %w", path, err)
	}
	return nil
}

// Read parses model lines from r:
//
//	T from_tag to_tag weight
//	F feature_string tag weight
//
// Blank lines and lines starting with '#' are ignored. A line with an unknown
// kind, tag or an unparsable weight is an error.
func (m *Model) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 4 {
			return fmt.Errorf("line %d: want 4 fields, got %d", lineNo, len(parts))
		}
		weight, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return fmt.Errorf("line %d: weight: %w", lineNo, err)
		}

		switch parts[0] {
		case "T":
			from, ok1 := ParseTag(parts[1])
			to, ok2 := ParseTag(parts[2])
			if !ok1 || !ok2 {
				return fmt.Errorf("line %d: bad transition %s->%s", lineNo, parts[1], parts[2])
			}
			m.Trans[from][to] = weight
		case "F":
			tag, ok := ParseTag(parts[2])
			if !ok {
				return fmt.Errorf("line %d: bad tag %q", lineNo, parts[2])
			}
			m.SetFeat(parts[1], tag, weight)
		default:
			return fmt.Errorf("line %d: unknown kind %q", lineNo, parts[0])
		}
	}
	return scanner.Err()
}

// SetFeat sets the weight of feat for tag.
func (m *Model) SetFeat(feat string, tag Tag, weight float64) {
	if m.Feats[feat] == nil {
		m.Feats[feat] = make(map[Tag]float64)
	}
	m.Feats[feat][tag] = weight
}
