package glossary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the declared encoding of the word list.
const DefaultEncoding = "gb2312"

// maxLineSize bounds a single record.
const maxLineSize = 1024 * 1024

var errInvalidBytes = errors.New("invalid byte sequence")

// Segmenter splits a definition fragment into tokens.
type Segmenter interface {
	Segment(text string) []string
}

// SegmenterFunc adapts a plain function to Segmenter.
type SegmenterFunc func(text string) []string

// Segment calls f(text).
func (f SegmenterFunc) Segment(text string) []string { return f(text) }

// LoadStats summarises one load.
type LoadStats struct {
	Lines         int
	Headwords     int
	Fragments     int
	Tokens        int
	ChineseWords  int
	DroppedTokens map[TokenKind]int
}

// Loader reads a word list and builds an Index.
type Loader struct {
	seg      Segmenter
	encName  string
	encoding encoding.Encoding
	log      *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEncoding sets the source encoding by WHATWG/IANA label, e.g. "gb2312",
// "gbk", "gb18030" or "utf-8". Unknown labels make NewLoader fail.
func WithEncoding(name string) LoaderOption {
	return func(l *Loader) { l.encName = name }
}

// WithLogger sets the logger used for the load summary.
func WithLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

// NewLoader creates a Loader that tokenizes fragments with seg.
func NewLoader(seg Segmenter, opts ...LoaderOption) (*Loader, error) {
	if seg == nil {
		return nil, errors.New("glossary: nil segmenter")
	}
	l := &Loader{seg: seg, encName: DefaultEncoding, log: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}

	enc, err := LookupEncoding(l.encName)
	if err != nil {
		return nil, err
	}
	l.encoding = enc
	return l, nil
}

// LookupEncoding resolves an encoding label. "gb2312" resolves to GBK, which
// is a superset of it.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("glossary: encoding %q: %w", name, err)
	}
	return enc, nil
}

// LoadFile opens path and loads it.
func (l *Loader) LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glossary: open %s: %w", path, err)
	}
	defer f.Close()

	ix, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("glossary: load %s: %w", path, err)
	}
	return ix, nil
}

// Load reads records from r, one per line:
//
//	<headword> <fragment> <fragment> ...
//
// Any malformed or undecodable line aborts the load and no Index is returned.
func (l *Loader) Load(r io.Reader) (*Index, error) {
	ix := newIndex()
	stats := LoadStats{DroppedTokens: make(map[TokenKind]int)}

	scanner := bufio.NewScanner(transform.NewReader(r, l.encoding.NewDecoder()))
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		// The decoder substitutes U+FFFD for invalid input, which GB2312 cannot encode.
		if strings.ContainsRune(raw, utf8.RuneError) {
			return nil, &DecodeError{Line: lineNo, Encoding: l.encName, Err: errInvalidBytes}
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			return nil, &MalformedRecordError{Line: lineNo, Text: raw}
		}

		fields := strings.Split(line, " ")
		headword, fragments := fields[0], fields[1:]

		fragmentWords := make([][]string, len(fragments))
		for i, frag := range fragments {
			tokens := l.seg.Segment(frag)
			stats.Tokens += len(tokens)
			for _, tok := range tokens {
				switch kind := Classify(tok); kind {
				case KindPunctuation, KindOther:
					stats.DroppedTokens[kind]++
				}
			}
			fragmentWords[i] = Words(ExtractChineseWords(tokens))
			stats.ChineseWords += len(fragmentWords[i])
		}

		ix.add(headword, fragments, fragmentWords)
		stats.Fragments += len(fragments)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("glossary: read line %d: %w", lineNo+1, err)
	}

	stats.Lines = lineNo
	stats.Headwords = ix.Len()
	ix.stats = stats

	l.log.Info("glossary loaded",
		slog.Int("lines", stats.Lines),
		slog.Int("headwords", stats.Headwords),
		slog.Int("fragments", stats.Fragments),
		slog.Int("chinese_words", stats.ChineseWords),
		slog.Int("distinct_chinese_words", len(ix.chineseKeys)),
		slog.Int("dropped_punctuation", stats.DroppedTokens[KindPunctuation]),
		slog.Int("dropped_other", stats.DroppedTokens[KindOther]),
	)
	return ix, nil
}
