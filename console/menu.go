// Package console is the interactive terminal front end of the glossary.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/teatak/glossary/glossary"
)

// DefaultChartWidth is the length of the longest bar drawn by option 4.
const DefaultChartWidth = 50

const menuText = `
Dictionary Tool
1. Search English words
2. Search Chinese word and show all possible matched English words list
3. Count letter occurrences
4. Draw letter occurrences bar graph
5. Exit
`

// Menu runs the numbered menu loop over an Index.
type Menu struct {
	ix         *glossary.Index
	in         *bufio.Scanner
	out        io.Writer
	ChartWidth int
}

// NewMenu reads choices from in and writes to out.
func NewMenu(ix *glossary.Index, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ix:         ix,
		in:         bufio.NewScanner(in),
		out:        out,
		ChartWidth: DefaultChartWidth,
	}
}

// Run loops until the user exits or input ends. Lookup failures are reported
// to the user and never end the loop; only read and write errors are returned.
func (m *Menu) Run() error {
	for {
		if _, err := io.WriteString(m.out, menuText); err != nil {
			return err
		}
		choice, ok := m.prompt("Enter your choice (1/2/3/4/5): ")
		if !ok {
			return m.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = m.searchEnglish()
		case "2":
			err = m.searchChinese()
		case "3":
			err = m.countLetters()
		case "4":
			err = BarChart(m.out, glossary.SortedLetters(m.ix.LetterFrequency()), m.ChartWidth)
		case "5":
			_, err = fmt.Fprintln(m.out, "Exiting...")
			return err
		default:
			_, err = fmt.Fprintln(m.out, "Invalid choice.")
		}
		if errors.Is(err, io.EOF) {
			return m.in.Err()
		}
		if err != nil {
			return err
		}
	}
}

// prompt writes label and reads one trimmed line. ok is false at end of input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) searchEnglish() error {
	query, ok := m.prompt("Enter a word to search: ")
	if !ok {
		return io.EOF
	}
	results := m.ix.SearchEnglish(query)
	word, ok, err := m.choose(results)
	if err != nil || !ok {
		return err
	}

	defs, err := m.ix.Define(word)
	if err != nil {
		return m.report(err)
	}
	for _, d := range defs {
		if _, err := fmt.Fprintln(m.out, d); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) searchChinese() error {
	query, ok := m.prompt("Enter a Chinese word to search: ")
	if !ok {
		return io.EOF
	}
	results := m.ix.SearchChinese(query)
	word, ok, err := m.choose(results)
	if err != nil || !ok {
		return err
	}

	english, err := m.ix.EnglishFor(word)
	if err != nil {
		return m.report(err)
	}
	for _, hw := range english {
		if _, err := fmt.Fprintln(m.out, hw); err != nil {
			return err
		}
	}
	return nil
}

// choose lists results and asks for one of them. ok is false when there was
// nothing to pick from.
func (m *Menu) choose(results []string) (string, bool, error) {
	w := bufio.NewWriter(m.out)
	if len(results) == 0 {
		fmt.Fprintln(w, "No result found")
	} else {
		fmt.Fprintln(w, "Search Results: ")
		for i, r := range results {
			fmt.Fprintf(w, "%d. %s\n", i+1, r)
		}
	}
	fmt.Fprintf(w, "Total matched words: %d\n", len(results))
	if len(results) == 0 {
		fmt.Fprintln(w, "No results to select.")
		return "", false, w.Flush()
	}
	if err := w.Flush(); err != nil {
		return "", false, err
	}

	word, ok := m.prompt("Select a word from the matched words: ")
	if !ok {
		return "", false, io.EOF
	}
	return word, true, nil
}

func (m *Menu) countLetters() error {
	w := bufio.NewWriter(m.out)
	fmt.Fprintln(w, "Letter Occurrences:")
	for _, lc := range glossary.SortedLetters(m.ix.LetterFrequency()) {
		fmt.Fprintf(w, "%c, %d\n", lc.Letter, lc.Count)
	}
	return w.Flush()
}

// report prints a lookup failure. Not-found is expected user input.
func (m *Menu) report(err error) error {
	var nf *glossary.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}
	_, werr := fmt.Fprintf(m.out, "No entry for %q.\n", nf.Key)
	return werr
}
