package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/corpusbot/cli/config"
	"github.com/corpusbot/cli/internal/chunker"
	"github.com/corpusbot/cli/internal/db"
	"github.com/corpusbot/cli/internal/documents"
	"github.com/corpusbot/cli/internal/embeddings"
	"github.com/corpusbot/cli/internal/ollama"
	"github.com/corpusbot/cli/internal/rag"
	"github.com/corpusbot/cli/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		migrateFlag = flag.Bool("migrate", false, "Create the pgvector extension and documents table")
		ingestPath  = flag.String("ingest", "", "Ingest a file (.txt, .md, .pdf, .epub) and exit")
		clearFlag   = flag.Bool("clear", false, "Remove all embeddings and exit")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := db.New(cfg.Database.ConnectionString, cfg.Embeddings.Dimension)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *migrateFlag {
		if err := store.Migrate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error running migrations: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations completed successfully")
		return
	}

	llm := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.ChatModel)
	if name, err := llm.ResolveModel(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not resolve chat model: %v\n", err)
	} else if name != llm.Model() {
		fmt.Fprintf(os.Stderr, "Using chat model %s\n", name)
		llm.UseModel(name)
	}

	emb := embeddings.New(cfg.Ollama.BaseURL, cfg.Embeddings.Model)
	splitter := chunker.NewSplitter(cfg.Processing.ChunkSize, cfg.Processing.ChunkOverlap)
	bot := rag.NewBot(splitter, emb, llm, store, cfg.Support.ContactEmail)

	switch {
	case *ingestPath != "":
		text, err := documents.Load(*ingestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *ingestPath, err)
			os.Exit(1)
		}
		if err := bot.Ingest(ctx, text); err != nil {
			fmt.Fprintf(os.Stderr, "Error ingesting %s: %v\n", *ingestPath, err)
			os.Exit(1)
		}
		count, err := store.CountDocuments(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting documents: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Ingested %s (%d chunks stored in total)\n", *ingestPath, count)

	case *clearFlag:
		if err := bot.ClearAll(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing embeddings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All embeddings removed")

	default:
		p := tea.NewProgram(tui.New(bot), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
			os.Exit(1)
		}
	}
}
