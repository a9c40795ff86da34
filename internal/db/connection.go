package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the database connection pool for the vector index.
type DB struct {
	pool      *pgxpool.Pool
	dimension int
}

// New creates a new database connection. dimension is the embedding
// dimension the documents table is declared with; every vector written
// to or queried against the index must have exactly this dimension.
func New(connString string, dimension int) (*DB, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension: %d", dimension)
	}

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool, dimension: dimension}, nil
}

// Dimension returns the embedding dimension the index is configured with.
func (db *DB) Dimension() int {
	return db.dimension
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}
