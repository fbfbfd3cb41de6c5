// gutendex-dump fetches a sample of books from the catalog and prints
// counts plus the first record as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/Sternrassler/gutendex-client/internal/config"
	"github.com/Sternrassler/gutendex-client/pkg/client"
	"github.com/Sternrassler/gutendex-client/pkg/gutendex"
	"github.com/Sternrassler/gutendex-client/pkg/logging"
)

func main() {
	cfg := config.MustLoad()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Str("languages", cfg.Languages).
		Int("limit", cfg.Limit).
		Msg("Starting catalog dump")

	if err := run(cfg, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Catalog dump failed")
	}
}

func run(cfg *config.Config, out io.Writer) error {
	c, err := client.New(client.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.HTTPTimeout,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	api := gutendex.New(c)

	params := url.Values{}
	if cfg.Languages != "" {
		params.Set("languages", cfg.Languages)
	}

	books := make([]gutendex.Book, 0, cfg.Limit)
	for book, err := range api.ListBooks(context.Background(), params) {
		if err != nil {
			return fmt.Errorf("list books: %w", err)
		}
		books = append(books, book)
		if len(books) >= cfg.Limit {
			break
		}
	}

	fmt.Fprintf(out, "Got %d books.\n", len(books))

	if len(books) > 0 {
		bookJSON, err := json.Marshal(books[0])
		if err != nil {
			return fmt.Errorf("marshal book: %w", err)
		}
		fmt.Fprintf(out, "First book: %s\n", bookJSON)
	}

	return nil
}
