package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/teatak/glossary/glossary"
)

// BarChart draws one horizontal bar per letter. The largest count gets width
// marks and every non-zero count gets at least one.
func BarChart(out io.Writer, counts []glossary.LetterCount, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "Letter Occurrences Bar Chart")

	maxCount := 0
	for _, lc := range counts {
		maxCount = max(maxCount, lc.Count)
	}
	if maxCount == 0 {
		fmt.Fprintln(w, "(no letters)")
		return w.Flush()
	}

	for _, lc := range counts {
		n := lc.Count * width / maxCount
		if n == 0 && lc.Count > 0 {
			n = 1
		}
		fmt.Fprintf(w, "%c | %s %d\n", lc.Letter, strings.Repeat("#", n), lc.Count)
	}
	return w.Flush()
}
