package rag

import "errors"

var (
	// ErrEmptyInput is returned when ingest is called with no usable text.
	ErrEmptyInput = errors.New("no usable text to ingest")

	// ErrEmbedding is returned when the embedding provider is
	// unreachable or rejects a request.
	ErrEmbedding = errors.New("embedding provider error")

	// ErrGeneration is returned when the generation provider is
	// unreachable or rejects a request.
	ErrGeneration = errors.New("generation provider error")
)

// NoContextReply is the fixed answer returned when the vector index has
// nothing to ground a reply in. It is an expected state before any
// content has been ingested, not an error.
const NoContextReply = "I don't have any context to form a reply. Please ingest some content first."
