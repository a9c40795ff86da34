package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Document is one embedded chunk stored in the vector index. The row id
// and the embedding id are distinct: the embedding id is the unique key
// of the stored vector itself.
type Document struct {
	ID          uuid.UUID
	EmbeddingID uuid.UUID
	Content     string
	Metadata    map[string]string
	Embedding   *pgvector.Vector
	CreatedAt   time.Time
}

// SearchMatch is one similarity-search hit. Score is cosine similarity,
// higher is closer.
type SearchMatch struct {
	Document Document
	Score    float64
}
