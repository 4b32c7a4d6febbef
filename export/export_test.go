package export

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/glossary/dictionary"
	"github.com/teatak/glossary/glossary"
	"github.com/teatak/glossary/segmenter"
)

const words = `abandon vt.丢弃；放弃，抛弃
quickly adv.迅速
fast adj.快速 adv.迅速
cat n.猫
the
`

func loadIndex(t *testing.T) *glossary.Index {
	t.Helper()
	dict := dictionary.NewDictionary()
	for _, w := range []string{"丢弃", "放弃", "抛弃", "迅速", "快速", "猫"} {
		dict.Add(w, 100)
	}
	l, err := glossary.NewLoader(segmenter.NewSegmenter(dict),
		glossary.WithEncoding("utf-8"),
		glossary.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	ix, err := l.Load(strings.NewReader(words))
	require.NoError(t, err)
	return ix
}

func TestWordCounts(t *testing.T) {
	t.Parallel()

	ix := loadIndex(t)

	assert.Equal(t, []WordCount{
		{Word: "迅速", Count: 2},
		{Word: "丢弃", Count: 1},
		{Word: "快速", Count: 1},
		{Word: "抛弃", Count: 1},
		{Word: "放弃", Count: 1},
	}, WordCounts(ix, 2))

	all := WordCounts(ix, 0)
	assert.Len(t, all, 6)
}

func TestWriteDictionary_RoundTrip(t *testing.T) {
	t.Parallel()

	ix := loadIndex(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDictionary(&buf, WordCounts(ix, 2)))
	assert.True(t, strings.HasPrefix(buf.String(), "迅速 2\n"))

	dict := dictionary.NewDictionary()
	require.NoError(t, dict.Read(&buf))
	assert.Equal(t, 5, dict.Len())
	freq, ok := dict.Frequency("迅速")
	require.True(t, ok)
	assert.Equal(t, 2.0, freq)
}

func TestWriteIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, loadIndex(t)))
	assert.Equal(t,
		"abandon\t丢弃 放弃 抛弃\n"+
			"quickly\t迅速\n"+
			"fast\t快速 迅速\n"+
			"cat\t猫\n"+
			"the\t\n",
		buf.String())
}
