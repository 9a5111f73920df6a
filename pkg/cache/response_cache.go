package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultKeyPrefix = "cms_cache_"
	DefaultTTL       = 5 * time.Minute
)

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("cache: GET %s: HTTP %d", e.URL, e.StatusCode)
}

// ErrInvalidJSON is returned when a 2xx body does not parse as JSON.
var ErrInvalidJSON = errors.New("cache: response is not valid JSON")

// Options are the request options that take part in the cache key.
type Options struct {
	Headers map[string]string `json:"headers,omitempty"`
}

// entry is what gets persisted per key.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix millis
}

// ResponseCache memoizes JSON GET responses in a Storage for a fixed TTL.
//
// A fresh entry is served without touching the network. A miss or stale
// entry costs exactly one request, unless single-flight is enabled, in
// which case concurrent misses for one key share a request.
type ResponseCache struct {
	storage    Storage
	prefix     string
	ttl        time.Duration
	httpClient *http.Client
	now        func() time.Time
	log        zerolog.Logger
	group      *singleflight.Group
}

type Option func(*ResponseCache)

func WithPrefix(prefix string) Option {
	return func(c *ResponseCache) { c.prefix = prefix }
}

func WithTTL(ttl time.Duration) Option {
	return func(c *ResponseCache) { c.ttl = ttl }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *ResponseCache) { c.httpClient = hc }
}

func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) { c.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *ResponseCache) { c.log = log }
}

// WithSingleFlight collapses concurrent misses for the same key into one
// network request.
func WithSingleFlight() Option {
	return func(c *ResponseCache) { c.group = &singleflight.Group{} }
}

func NewResponseCache(storage Storage, opts ...Option) *ResponseCache {
	c := &ResponseCache{
		storage:    storage,
		prefix:     DefaultKeyPrefix,
		ttl:        DefaultTTL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the storage key for url and opts.
func (c *ResponseCache) Key(url string, opts Options) string {
	return c.prefix + CanonicalKey(url, opts)
}

// FetchWithCache returns the JSON body of a GET to url, from storage when a
// fresh entry exists.
func (c *ResponseCache) FetchWithCache(ctx context.Context, url string, opts Options) (json.RawMessage, error) {
	key := c.Key(url, opts)

	if data, ok := c.lookup(ctx, key); ok {
		return data, nil
	}

	return c.load(ctx, key, url, opts)
}

// Revalidate fetches url even when a fresh entry exists. The stored entry is
// replaced only on success; on failure the previous entry stays readable.
func (c *ResponseCache) Revalidate(ctx context.Context, url string, opts Options) (json.RawMessage, error) {
	return c.load(ctx, c.Key(url, opts), url, opts)
}

// load fetches and stores url. With single-flight enabled the shared request
// runs detached from any one caller's cancellation, and each caller stops
// waiting when its own ctx is done.
func (c *ResponseCache) load(ctx context.Context, key, url string, opts Options) (json.RawMessage, error) {
	if c.group == nil {
		return c.fetchAndStore(ctx, key, url, opts)
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		return c.fetchAndStore(context.WithoutCancel(ctx), key, url, opts)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops the entry for url and opts.
func (c *ResponseCache) Invalidate(ctx context.Context, url string, opts Options) error {
	return c.storage.Remove(ctx, c.Key(url, opts))
}

// lookup returns stored data if the entry exists and is within TTL.
// Read failures and corrupt entries count as misses.
func (c *ResponseCache) lookup(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, ok, err := c.storage.Get(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("corrupt cache entry")
		return nil, false
	}
	if !c.fresh(e) {
		return nil, false
	}
	return e.Data, true
}

func (c *ResponseCache) fresh(e entry) bool {
	age := c.now().Sub(time.UnixMilli(e.Timestamp))
	return age <= c.ttl
}

func (c *ResponseCache) fetchAndStore(ctx context.Context, key, url string, opts Options) (json.RawMessage, error) {
	data, err := c.fetch(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, data)
	return data, nil
}

func (c *ResponseCache) fetch(ctx context.Context, url string, opts Options) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(body), nil
}

// store persists data under key. On failure it sweeps expired entries and
// retries once; a second failure is only logged.
func (c *ResponseCache) store(ctx context.Context, key string, data json.RawMessage) {
	raw, err := json.Marshal(entry{Data: data, Timestamp: c.now().UnixMilli()})
	if err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("encode cache entry")
		return
	}

	err = c.storage.Set(ctx, key, string(raw))
	if err == nil {
		return
	}
	c.log.Warn().Err(err).Str("key", key).Msg("cache write failed, sweeping expired entries")

	removed := c.Sweep(ctx)

	if err = c.storage.Set(ctx, key, string(raw)); err != nil {
		c.log.Error().Err(err).Str("key", key).Int("swept", removed).Msg("cache write failed after sweep, serving uncached")
	}
}

// Sweep removes every entry under the prefix that is expired or unreadable
// and returns how many were removed.
func (c *ResponseCache) Sweep(ctx context.Context) int {
	keys, err := c.storage.Keys(ctx, c.prefix)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache sweep: list keys")
		return 0
	}

	removed := 0
	for _, k := range keys {
		raw, ok, err := c.storage.Get(ctx, k)
		if err != nil || !ok {
			continue
		}
		var e entry
		if err := json.Unmarshal([]byte(raw), &e); err == nil && c.fresh(e) {
			continue
		}
		if err := c.storage.Remove(ctx, k); err == nil {
			removed++
		}
	}
	return removed
}

// FetchJSON is FetchWithCache plus decoding into T.
func FetchJSON[T any](ctx context.Context, c *ResponseCache, url string, opts Options) (T, error) {
	var out T
	data, err := c.FetchWithCache(ctx, url, opts)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", url, err)
	}
	return out, nil
}
