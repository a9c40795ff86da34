package rag

import (
	"context"
	"fmt"
)

const standaloneTemplate = `Given a question, convert it to a standalone question. question: %s standalone question:`

// Rewriter turns a raw user utterance into a question that makes sense
// without the surrounding conversation.
type Rewriter struct {
	gen Generator
}

// NewRewriter creates a query rewriter backed by the given generator.
func NewRewriter(gen Generator) *Rewriter {
	return &Rewriter{gen: gen}
}

// Rewrite asks the generation model to resolve references in the
// question so it can stand alone. Rewriting is an accuracy optimisation:
// callers may fall back to the raw question when this fails.
func (r *Rewriter) Rewrite(ctx context.Context, question string) (string, error) {
	standalone, err := r.gen.Generate(ctx, fmt.Sprintf(standaloneTemplate, question))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return standalone, nil
}
