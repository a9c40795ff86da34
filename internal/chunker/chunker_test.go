package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortInput(t *testing.T) {
	s := NewSplitter(500, 50)
	chunks := s.Split("hello world")

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0].Content)
	assert.Equal(t, 0, chunks[0].Offset)
}

func TestSplitEmptyInput(t *testing.T) {
	s := NewSplitter(500, 50)
	assert.Nil(t, s.Split(""))
}

func TestSplitWindowsAndOverlap(t *testing.T) {
	s := NewSplitter(500, 50)
	text := strings.Repeat("abcdefghij", 130) // 1300 runes
	chunks := s.Split(text)

	require.Len(t, chunks, 3)
	for _, ch := range chunks {
		assert.NotEmpty(t, ch.Content)
		assert.LessOrEqual(t, len([]rune(ch.Content)), 500)
	}

	// Consecutive windows share exactly 50 runes.
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1].Content)
		tail := string(prev[len(prev)-50:])
		assert.True(t, strings.HasPrefix(chunks[i].Content, tail),
			"chunk %d does not start with the last 50 runes of chunk %d", i, i-1)
		assert.Equal(t, chunks[i-1].Offset+450, chunks[i].Offset)
	}
}

func TestSplitCoversEveryRune(t *testing.T) {
	s := NewSplitter(500, 50)
	text := strings.Repeat("x", 1234)
	chunks := s.Split(text)

	covered := make([]bool, len([]rune(text)))
	for _, ch := range chunks {
		for i := range []rune(ch.Content) {
			covered[ch.Offset+i] = true
		}
	}
	for i, ok := range covered {
		require.True(t, ok, "rune %d not covered by any chunk", i)
	}
}

func TestSplitDeterministic(t *testing.T) {
	s := NewSplitter(500, 50)
	text := strings.Repeat("the quick brown fox. ", 100)

	first := s.Split(text)
	second := s.Split(text)
	assert.Equal(t, first, second)
}

func TestSplitMultiByteRunes(t *testing.T) {
	s := NewSplitter(10, 2)
	text := strings.Repeat("héllo wörld ", 5)
	chunks := s.Split(text)

	require.NotEmpty(t, chunks)
	for _, ch := range chunks {
		assert.LessOrEqual(t, len([]rune(ch.Content)), 10)
		assert.True(t, strings.HasPrefix(string([]rune(text)[ch.Offset:]), ch.Content))
	}
}

func TestNewSplitterClampsParameters(t *testing.T) {
	s := NewSplitter(0, -1)
	chunks := s.Split(strings.Repeat("a", 600))
	require.Len(t, chunks, 2)

	// Overlap equal to or larger than the window would never advance.
	s = NewSplitter(10, 20)
	chunks = s.Split(strings.Repeat("b", 30))
	require.NotEmpty(t, chunks)
	assert.Less(t, len(chunks), 30)
}
