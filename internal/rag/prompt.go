package rag

import "fmt"

const answerTemplate = `You are a helpful and enthusiastic support bot who can answer a given question based on the context provided. Try to find the answer in the context. Also use the conversation history to answer the question. If you really don't know the answer, say "I'm sorry, I don't know the answer to that." And direct the questioner to email %s. Don't try to make up an answer. Always speak as if you were chatting to a friend.
conversation_history: %s
context: %s
question: %s
answer:`

// Composer assembles the final generation prompt from the original
// question, the retrieved context and the serialized conversation
// history.
type Composer struct {
	contact string
}

// NewComposer creates a composer. contact is the support channel the
// bot directs users to when it does not know the answer.
func NewComposer(contact string) *Composer {
	if contact == "" {
		contact = "help@support.com"
	}
	return &Composer{contact: contact}
}

// Compose renders the prompt: instruction, history, context, question,
// answer cue, in that order.
func (c *Composer) Compose(question, context, history string) string {
	return fmt.Sprintf(answerTemplate, c.contact, history, context, question)
}
