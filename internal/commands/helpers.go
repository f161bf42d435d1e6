package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/storage"
)

const dateFormat = "2006-01-02"

// zeroTime means "no cutoff" wherever an as-of date is optional.
var zeroTime time.Time

// env resolves where the book lives and which currency reports use.
type env struct {
	bookPath     string
	mainCurrency string
}

// loadEnv reads tally.yaml from the working directory; an explicit
// --book flag overrides the configured database path.
func loadEnv(bookFlag string) (*env, error) {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		if bookFlag == "" {
			return nil, fmt.Errorf("no %s found (run 'tally init' or pass --book): %w", config.FileName, err)
		}
		return &env{bookPath: bookFlag}, nil
	}

	e := &env{bookPath: cfg.Book.Path, mainCurrency: cfg.Currency.Main}
	if bookFlag != "" {
		e.bookPath = bookFlag
	}
	return e, nil
}

// openBook opens the store and loads the full book snapshot.
func openBook(ctx context.Context, e *env) (*storage.Store, *book.Book, error) {
	store, err := storage.Open(e.bookPath)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}

	b, err := store.LoadBook(ctx)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	slog.Debug("loaded book", "path", e.bookPath, "accounts", len(b.Accounts()))
	return store, b, nil
}

// parseAsOf parses an optional --as-of value; empty means no cutoff.
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --as-of %q: %w", value, err)
	}
	return t, nil
}
