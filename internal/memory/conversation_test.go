package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndHistory(t *testing.T) {
	s := NewStore()
	s.Record("what is pgvector?", "a postgres extension")
	s.Record("who maintains it?", "the pgvector project")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t,
		"HUMAN: what is pgvector?\nAI: a postgres extension\n"+
			"HUMAN: who maintains it?\nAI: the pgvector project",
		s.History())
}

func TestRecordOverwritesSameQuestion(t *testing.T) {
	s := NewStore()
	s.Record("Q", "A1")
	s.Record("other", "B")
	s.Record("Q", "A2")

	require.Equal(t, 2, s.Len())
	turns := s.Turns()
	assert.Equal(t, "Q", turns[0].Question)
	assert.Equal(t, "A2", turns[0].Answer)
	assert.Equal(t, "other", turns[1].Question)
	assert.NotContains(t, s.History(), "A1")
}

func TestEmptyHistory(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.History())
}

func TestConcurrentRecord(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			q := fmt.Sprintf("question %d", n%10)
			s.Record(q, fmt.Sprintf("answer %d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
}
