package sheets

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Client is the Sheet Data Client. It reads raw rows from a Source and never
// lets a content failure escape through FetchTable: a broken source degrades
// to "no data".
type Client struct {
	source Source
	log    zerolog.Logger
}

// NewClient wraps source. A nil source behaves like an unconfigured endpoint.
func NewClient(source Source, log zerolog.Logger) *Client {
	return &Client{source: source, log: log}
}

// Query returns the rows of table or the error that prevented reading them.
func (c *Client) Query(ctx context.Context, table string, filters Filters) ([]Row, error) {
	if c.source == nil {
		return nil, ErrNotConfigured
	}
	return c.source.Query(ctx, table, filters)
}

// FetchTable returns the rows of table, or an empty slice on any failure.
// Failures are logged, never returned.
func (c *Client) FetchTable(ctx context.Context, table string, filters Filters) []Row {
	rows, err := c.Query(ctx, table, filters)
	if err != nil {
		ev := c.log.Error()
		if errors.Is(err, ErrNotConfigured) {
			ev = c.log.Warn()
		}
		ev.Err(err).
			Str("table", table).
			Str("category", filters.Category).
			Str("status", filters.Status).
			Msg("fetch table failed, serving empty result")
		return []Row{}
	}
	if rows == nil {
		return []Row{}
	}
	return rows
}

// Writer returns the underlying source as a Writer when it supports writes.
func (c *Client) Writer() (Writer, bool) {
	w, ok := c.source.(Writer)
	return w, ok
}
