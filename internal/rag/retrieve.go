package rag

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/corpusbot/cli/internal/db"
)

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) (*pgvector.Vector, error)
}

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Index is the vector store the retriever searches and ingestion fills.
type Index interface {
	InsertDocumentsBatch(ctx context.Context, docs []*db.Document) error
	SearchNearest(ctx context.Context, embedding *pgvector.Vector, limit int) ([]db.SearchMatch, error)
	RemoveAll(ctx context.Context) error
}

// Retriever finds the stored chunk most similar to a question.
type Retriever struct {
	emb   Embedder
	index Index
}

// NewRetriever creates a retriever over the given embedder and index.
func NewRetriever(emb Embedder, index Index) *Retriever {
	return &Retriever{emb: emb, index: index}
}

// Retrieve embeds the standalone question and returns the text of the
// single best match. The second return value is false when the index is
// empty. No similarity threshold is applied: even a weak best match is
// returned as context.
func (r *Retriever) Retrieve(ctx context.Context, standaloneQuestion string) (string, bool, error) {
	queryEmbedding, err := r.emb.Embed(ctx, standaloneQuestion)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}

	matches, err := r.index.SearchNearest(ctx, queryEmbedding, 1)
	if err != nil {
		return "", false, fmt.Errorf("failed to search index: %w", err)
	}
	if len(matches) == 0 {
		return "", false, nil
	}
	return matches[0].Document.Content, true, nil
}
