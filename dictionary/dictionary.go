// Package dictionary holds the word frequencies the segmenter scores paths with.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// UnknownLogProb is the score given to words the dictionary does not contain.
const UnknownLogProb = -20.0

// defaultFreq is assumed for a line that carries a word but no frequency.
const defaultFreq = 20000.0

// Dictionary holds words and their frequencies.
type Dictionary struct {
	Total  float64
	Words  map[string]float64
	MaxLen int
}

// NewDictionary creates a new empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Words: make(map[string]float64),
	}
}

// Load reads a dictionary file.
// File format: word frequency (space separated), one word per line.
func (d *Dictionary) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer file.Close()

	if err := d.Read(file); err != nil {
		return fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	return nil
}

// Read merges every entry from r into the dictionary. A word seen again
// replaces the earlier frequency.
func (d *Dictionary) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		freq := defaultFreq
		if len(parts) >= 2 {
			if f, err := strconv.ParseFloat(parts[1], 64); err == nil {
				freq = f
			}
		}
		d.Add(parts[0], freq)
	}
	return scanner.Err()
}

// Add records word with the given frequency.
func (d *Dictionary) Add(word string, freq float64) {
	if old, ok := d.Words[word]; ok {
		d.Total -= old
	}
	d.Words[word] = freq
	d.Total += freq
	if n := utf8.RuneCountInString(word); n > d.MaxLen {
		d.MaxLen = n
	}
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.Words)
}

// Frequency returns the frequency of a word.
func (d *Dictionary) Frequency(word string) (float64, bool) {
	val, ok := d.Words[word]
	return val, ok
}

// Contains checks if a word exists in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Words[word]
	return ok
}

// LogProbability returns the log probability of a word, or UnknownLogProb
// for words that are missing or when the dictionary is empty.
func (d *Dictionary) LogProbability(word string) float64 {
	if d.Total <= 0 {
		return UnknownLogProb
	}
	freq, ok := d.Words[word]
	if !ok || freq <= 0 {
		return UnknownLogProb
	}
	return math.Log(freq / d.Total)
}
