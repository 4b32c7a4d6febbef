package glossary

import (
	"errors"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Define(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	defs, err := ix.Define("quickly")
	require.NoError(t, err)
	assert.Equal(t, []string{"adv.迅速"}, defs)

	_, err = ix.Define("QUICKLY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "QUICKLY", nf.Key)
	assert.Equal(t, "headword", nf.Kind)
}

func TestIndex_DefineReturnsCopy(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	defs, err := ix.Define("quickly")
	require.NoError(t, err)
	defs[0] = "changed"

	again, err := ix.Define("quickly")
	require.NoError(t, err)
	assert.Equal(t, []string{"adv.迅速"}, again)
}

func TestIndex_SearchEnglish(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	assert.Equal(t, ix.Headwords(), ix.SearchEnglish(""))
	assert.Equal(t, []string{"cat", "Cat"}, ix.SearchEnglish("cat"))
	assert.Equal(t, ix.SearchEnglish("cat"), ix.SearchEnglish("CAT"))
	assert.Equal(t, []string{"abandon", "cat", "Cat", "fast"}, ix.SearchEnglish("a"))
	assert.Empty(t, ix.SearchEnglish("zebra"))
}

func TestIndex_SearchChinese(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	assert.Equal(t, []string{"丢弃", "放弃", "抛弃"}, ix.SearchChinese("弃"))
	assert.Equal(t, []string{"猫", "猫科"}, ix.SearchChinese("猫"))
	assert.Equal(t, []string{"丢弃", "放弃", "抛弃", "迅速", "猫", "猫科", "动物", "快速"}, ix.SearchChinese(""))
	assert.Empty(t, ix.SearchChinese("狗"))
}

func TestIndex_EnglishFor(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	english, err := ix.EnglishFor("猫科")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat"}, english)

	_, err = ix.EnglishFor("狗")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	assert.Equal(t, []string{"quickly", "fast"}, ix.Search("迅速"))
	assert.Equal(t, []string{"cat", "Cat"}, ix.Search(" CAT "))
	assert.Equal(t, []string{"cat", "Cat"}, ix.Search("猫"))
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	res, err := ix.Lookup("abandon")
	require.NoError(t, err)
	assert.Equal(t, Result{Word: "abandon", Definitions: []string{"vt.丢弃；放弃，抛弃"}}, res)

	res, err = ix.Lookup("迅速")
	require.NoError(t, err)
	assert.Equal(t, Result{Word: "迅速", English: []string{"quickly", "fast"}}, res)

	_, err = ix.Lookup("nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIndex_LetterFrequency(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)
	freq := ix.LetterFrequency()

	total := 0
	for r, n := range freq {
		assert.True(t, r >= 'a' && r <= 'z', "unexpected key %q", r)
		total += n
	}

	letters := 0
	for _, hw := range ix.Headwords() {
		for _, r := range hw {
			if r < unicode.MaxASCII && unicode.IsLetter(r) {
				letters++
			}
		}
	}
	assert.Equal(t, letters, total)
	assert.Equal(t, 24, total)
	assert.Equal(t, 6, freq['a'])
	assert.Equal(t, 3, freq['t'])
	assert.Equal(t, 3, freq['c'])
	assert.NotContains(t, freq, 'C')
}

func TestIndex_LetterFrequencyIgnoresNonLatin(t *testing.T) {
	t.Parallel()

	ix := newIndex()
	ix.add("café-2", nil, nil)
	ix.add("naïve", nil, nil)

	assert.Equal(t, map[rune]int{'c': 1, 'a': 2, 'f': 1, 'n': 1, 'v': 1, 'e': 1}, ix.LetterFrequency())
}

func TestSortedLetters(t *testing.T) {
	t.Parallel()

	got := SortedLetters(map[rune]int{'c': 2, 'a': 5, 'b': 1})
	assert.Equal(t, []LetterCount{{'a', 5}, {'b', 1}, {'c', 2}}, got)
	assert.Empty(t, SortedLetters(nil))
}

func TestIndex_ConcurrentReads(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = ix.SearchEnglish("a")
				_ = ix.SearchChinese("弃")
				_, _ = ix.EnglishFor("迅速")
				_ = ix.LetterFrequency()
			}
		}()
	}
	wg.Wait()
}

func TestIndex_ChineseKeys(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	keys := ix.ChineseKeys()
	assert.Equal(t, ix.SearchChinese(""), keys)
	for _, k := range keys {
		english, err := ix.EnglishFor(k)
		require.NoError(t, err)
		assert.NotEmpty(t, english)
	}
}

func TestIndex_StatsReturnsCopy(t *testing.T) {
	t.Parallel()

	ix := loadSample(t)

	st := ix.Stats()
	require.Equal(t, 2, st.DroppedTokens[KindPunctuation])
	st.DroppedTokens[KindPunctuation] = 99
	delete(st.DroppedTokens, KindOther)

	assert.Equal(t, 2, ix.Stats().DroppedTokens[KindPunctuation])
}
