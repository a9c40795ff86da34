package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeOrdering(t *testing.T) {
	c := NewComposer("support@example.com")
	prompt := c.Compose(
		"what color is it?",
		"The widget is blue.",
		"HUMAN: hi\nAI: hello",
	)

	instruction := strings.Index(prompt, "support bot")
	history := strings.Index(prompt, "conversation_history: HUMAN: hi")
	context := strings.Index(prompt, "context: The widget is blue.")
	question := strings.Index(prompt, "question: what color is it?")
	cue := strings.LastIndex(prompt, "answer:")

	require.NotEqual(t, -1, instruction)
	require.NotEqual(t, -1, history)
	require.NotEqual(t, -1, context)
	require.NotEqual(t, -1, question)
	require.NotEqual(t, -1, cue)

	// instruction -> history -> context -> question -> answer cue
	assert.Less(t, instruction, history)
	assert.Less(t, history, context)
	assert.Less(t, context, question)
	assert.Less(t, question, cue)
}

func TestComposeContactChannel(t *testing.T) {
	c := NewComposer("ops@corp.example")
	prompt := c.Compose("q", "ctx", "")
	assert.Contains(t, prompt, "ops@corp.example")
	assert.Contains(t, prompt, "I'm sorry, I don't know the answer to that.")
	assert.Contains(t, prompt, "Don't try to make up an answer.")
}

func TestComposeDefaultContact(t *testing.T) {
	c := NewComposer("")
	assert.Contains(t, c.Compose("q", "ctx", ""), "help@support.com")
}

func TestRewriteTemplateCarriesQuestion(t *testing.T) {
	gen := &fakeGenerator{standalone: "a standalone question"}
	r := NewRewriter(gen)

	out, err := r.Rewrite(t.Context(), "and what about that?")
	require.NoError(t, err)
	assert.Equal(t, "a standalone question", out)
}
