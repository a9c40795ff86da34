package memory

import (
	"strings"
	"sync"
)

// Turn is one recorded question/answer exchange.
type Turn struct {
	Question string
	Answer   string
}

// Store keeps the running conversation for the life of the process.
// It is keyed by question text: asking the same question again replaces
// the stored answer instead of appending a duplicate turn.
type Store struct {
	mu      sync.RWMutex
	answers map[string]string
	order   []string
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{
		answers: make(map[string]string),
	}
}

// Record stores the answer for a question. A repeated question keeps its
// original position in the conversation and only the answer is replaced.
func (s *Store) Record(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.answers[question]; !ok {
		s.order = append(s.order, question)
	}
	s.answers[question] = answer
}

// Len returns the number of recorded turns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Turns returns the recorded exchanges in insertion order.
func (s *Store) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := make([]Turn, 0, len(s.order))
	for _, q := range s.order {
		turns = append(turns, Turn{Question: q, Answer: s.answers[q]})
	}
	return turns
}

// History renders the conversation as HUMAN/AI line pairs for prompt
// assembly, in insertion order.
func (s *Store) History() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b strings.Builder
	for i, q := range s.order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("HUMAN: ")
		b.WriteString(q)
		b.WriteString("\nAI: ")
		b.WriteString(s.answers[q])
	}
	return b.String()
}
