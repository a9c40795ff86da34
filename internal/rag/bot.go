package rag

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/corpusbot/cli/internal/chunker"
	"github.com/corpusbot/cli/internal/db"
	"github.com/corpusbot/cli/internal/memory"
)

// Bot orchestrates the retrieval-augmented chat pipeline: ingestion of
// raw text into the vector index, and answering questions grounded in
// what was ingested.
type Bot struct {
	splitter  *chunker.Splitter
	emb       Embedder
	gen       Generator
	index     Index
	rewriter  *Rewriter
	retriever *Retriever
	composer  *Composer
	history   *memory.Store
}

// NewBot wires the RAG pipeline together. contact is the support channel
// included in the prompt's unknown-answer instruction.
func NewBot(splitter *chunker.Splitter, emb Embedder, gen Generator, index Index, contact string) *Bot {
	return &Bot{
		splitter:  splitter,
		emb:       emb,
		gen:       gen,
		index:     index,
		rewriter:  NewRewriter(gen),
		retriever: NewRetriever(emb, index),
		composer:  NewComposer(contact),
		history:   memory.NewStore(),
	}
}

// History exposes the conversation memory. Its lifetime is the process
// lifetime; clearing the index does not touch it.
func (b *Bot) History() *memory.Store {
	return b.history
}

// Ingest splits text into chunks, embeds each chunk and stores the
// results in the vector index. Ingestion is abort-all: every chunk is
// embedded before anything is written, so a provider failure leaves the
// index untouched.
func (b *Bot) Ingest(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}

	chunks := b.splitter.Split(text)
	docs := make([]*db.Document, 0, len(chunks))
	for i, ch := range chunks {
		embedding, err := b.emb.Embed(ctx, ch.Content)
		if err != nil {
			return fmt.Errorf("%w: chunk %d: %v", ErrEmbedding, i, err)
		}
		docs = append(docs, &db.Document{
			ID:          uuid.New(),
			EmbeddingID: uuid.New(),
			Content:     ch.Content,
			Metadata:    map[string]string{"offset": strconv.Itoa(ch.Offset)},
			Embedding:   embedding,
		})
	}

	if err := b.index.InsertDocumentsBatch(ctx, docs); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}
	return nil
}

// Chat answers a user message grounded in the ingested corpus:
// rewrite the question to stand alone, retrieve the best-matching chunk,
// compose the prompt with the conversation history, generate the answer
// and record the exchange. When the index has no content the fixed
// no-context reply is returned without calling the generator or touching
// the history.
func (b *Bot) Chat(ctx context.Context, userMessage string) (string, error) {
	standalone, err := b.rewriter.Rewrite(ctx, userMessage)
	if err != nil {
		// Rewriting only sharpens retrieval; degrade to the raw question.
		fmt.Fprintf(os.Stderr, "Warning: standalone rewrite failed, using raw question: %v\n", err)
		standalone = userMessage
	}

	retrieved, ok, err := b.retriever.Retrieve(ctx, standalone)
	if err != nil {
		return "", err
	}
	if !ok {
		return NoContextReply, nil
	}

	// The prompt uses the original message, not the rewritten one.
	prompt := b.composer.Compose(userMessage, retrieved, b.history.History())
	answer, err := b.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	b.history.Record(userMessage, answer)
	return answer, nil
}

// ClearAll removes every document from the vector index. The
// conversation memory is left intact.
func (b *Bot) ClearAll(ctx context.Context) error {
	if err := b.index.RemoveAll(ctx); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}
	return nil
}
