// Package lookup runs the search, ISBN selection, cover fetch and display
// pipeline.
package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/bookcover/internal/openlibrary"
)

// Searcher finds books matching a query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]openlibrary.Record, error)
}

// CoverFetcher downloads cover images. A false result means no cover.
type CoverFetcher interface {
	FetchCover(ctx context.Context, isbn string) ([]byte, bool)
}

// Presenter displays image bytes.
type Presenter interface {
	Render(data []byte) error
}

// SelectFunc narrows search results before ISBN selection, e.g. by asking
// the user. Returning an empty slice ends the run with NoISBN.
type SelectFunc func(query string, records []openlibrary.Record) ([]openlibrary.Record, error)

// Outcome describes how a run ended.
type Outcome int

const (
	// Shown means a cover was found and displayed.
	Shown Outcome = iota
	// NoResults means the search returned nothing.
	NoResults
	// NoISBN means no record carried a usable ISBN.
	NoISBN
	// NoImage means no cover image was available.
	NoImage
)

func (o Outcome) String() string {
	switch o {
	case Shown:
		return "cover shown"
	case NoResults:
		return "No books found"
	case NoISBN:
		return "No ISBN found"
	case NoImage:
		return "No image found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of a run along with the data it produced.
type Result struct {
	Outcome Outcome
	Records []openlibrary.Record
	ISBN    string // the ISBN whose cover was tried last
}

// Finder wires the pipeline components together.
type Finder struct {
	Books     Searcher
	Covers    CoverFetcher
	Presenter Presenter
	Select    SelectFunc
	Limit     int
	// TryAll tries every candidate ISBN until a cover is found instead of
	// only the first one.
	TryAll bool
}

// Run executes the pipeline for query. Search and presentation errors are
// returned; missing results, ISBNs and covers are reported through the
// Outcome.
func (f *Finder) Run(ctx context.Context, query string) (Result, error) {
	records, err := f.Books.Search(ctx, query, f.Limit)
	if err != nil {
		return Result{}, fmt.Errorf("searching books: %w", err)
	}

	result := Result{Records: records}
	if len(records) == 0 {
		return f.finish(result, NoResults), nil
	}

	candidates := records
	if f.Select != nil {
		candidates, err = f.Select(query, records)
		if err != nil {
			return Result{}, fmt.Errorf("selecting book: %w", err)
		}
	}

	isbns := f.isbns(candidates)
	if len(isbns) == 0 {
		return f.finish(result, NoISBN), nil
	}

	for _, isbn := range isbns {
		result.ISBN = isbn
		slog.Info("Fetching cover", "isbn", isbn)

		data, ok := f.Covers.FetchCover(ctx, isbn)
		if !ok {
			continue
		}

		if err := f.Presenter.Render(data); err != nil {
			return result, fmt.Errorf("displaying cover for %s: %w", isbn, err)
		}
		return f.finish(result, Shown), nil
	}

	return f.finish(result, NoImage), nil
}

func (f *Finder) isbns(records []openlibrary.Record) []string {
	if f.TryAll {
		return openlibrary.Candidates(records)
	}
	if isbn, ok := openlibrary.SelectISBN(records); ok {
		return []string{isbn}
	}
	return nil
}

func (f *Finder) finish(result Result, outcome Outcome) Result {
	result.Outcome = outcome
	if outcome != Shown {
		slog.Info(outcome.String())
	}
	return result
}
