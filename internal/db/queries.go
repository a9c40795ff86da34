package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// InsertDocument inserts a single embedded chunk.
func (db *DB) InsertDocument(ctx context.Context, doc *Document) error {
	if err := db.checkDimension(doc.Embedding); err != nil {
		return err
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO documents (id, embedding_id, content, metadata, embedding)
		 VALUES ($1, $2, $3, $4, $5)`,
		doc.ID, doc.EmbeddingID, doc.Content, doc.Metadata, doc.Embedding,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// InsertDocumentsBatch inserts multiple embedded chunks in one round trip.
func (db *DB) InsertDocumentsBatch(ctx context.Context, docs []*Document) error {
	for _, doc := range docs {
		if err := db.checkDimension(doc.Embedding); err != nil {
			return err
		}
	}

	batch := &pgx.Batch{}
	for _, doc := range docs {
		batch.Queue(
			`INSERT INTO documents (id, embedding_id, content, metadata, embedding)
			 VALUES ($1, $2, $3, $4, $5)`,
			doc.ID, doc.EmbeddingID, doc.Content, doc.Metadata, doc.Embedding,
		)
	}
	br := db.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < len(docs); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert document %d: %w", i, err)
		}
	}
	return nil
}

// SearchNearest finds the documents closest to the query embedding by
// cosine distance. Equal distances are broken by insertion time and row
// id so results are reproducible.
func (db *DB) SearchNearest(ctx context.Context, embedding *pgvector.Vector, limit int) ([]SearchMatch, error) {
	if err := db.checkDimension(embedding); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 1
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, embedding_id, content, metadata, created_at,
		        1 - (embedding <=> $1) AS score
		 FROM documents
		 ORDER BY embedding <=> $1, created_at, id
		 LIMIT $2`,
		embedding, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}
	defer rows.Close()

	var matches []SearchMatch
	for rows.Next() {
		var m SearchMatch
		if err := rows.Scan(
			&m.Document.ID, &m.Document.EmbeddingID, &m.Document.Content,
			&m.Document.Metadata, &m.Document.CreatedAt, &m.Score,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// RemoveAll deletes every document from the index. Irreversible.
func (db *DB) RemoveAll(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM documents`); err != nil {
		return fmt.Errorf("failed to remove documents: %w", err)
	}
	return nil
}

// CountDocuments returns the number of stored chunks.
func (db *DB) CountDocuments(ctx context.Context) (int64, error) {
	var n int64
	if err := db.pool.QueryRow(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

func (db *DB) checkDimension(v *pgvector.Vector) error {
	if v == nil {
		return fmt.Errorf("nil embedding")
	}
	if got := len(v.Slice()); got != db.dimension {
		return fmt.Errorf("embedding dimension mismatch: got %d, index expects %d", got, db.dimension)
	}
	return nil
}
