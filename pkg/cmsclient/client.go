// Package cmsclient reads the content API from Go, memoizing responses in a
// cache.ResponseCache.
package cmsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/pkg/cache"
)

// ErrNotFound is returned by single-item lookups answered with 404.
var ErrNotFound = errors.New("cmsclient: not found")

// Client is bound to one API base URL, e.g. "https://firm.example/api/cms".
type Client struct {
	baseURL string
	cache   *cache.ResponseCache
}

func New(baseURL string, rc *cache.ResponseCache) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), cache: rc}
}

// ListParams are the optional query parameters of list endpoints.
type ListParams struct {
	Category string
	Status   string
	Limit    int
	Sort     string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

// ========================================
// ARTICLES & NEWS
// ========================================

func (c *Client) Articles(ctx context.Context, p ListParams) (model.ListResponse[model.Article], error) {
	return list[model.Article](ctx, c, "articles", p)
}

func (c *Client) Article(ctx context.Context, slug string) (model.Article, error) {
	return one[model.Article](ctx, c, "articles", slug)
}

func (c *Client) News(ctx context.Context, p ListParams) (model.ListResponse[model.Article], error) {
	return list[model.Article](ctx, c, "news", p)
}

func (c *Client) NewsItem(ctx context.Context, slug string) (model.Article, error) {
	return one[model.Article](ctx, c, "news", slug)
}

// ========================================
// PEOPLE
// ========================================

func (c *Client) Profiles(ctx context.Context, p ListParams) (model.ListResponse[model.Profile], error) {
	return list[model.Profile](ctx, c, "profiles", p)
}

func (c *Client) Profile(ctx context.Context, id string) (model.Profile, error) {
	return one[model.Profile](ctx, c, "profiles", id)
}

func (c *Client) Founders(ctx context.Context) (model.ListResponse[model.Founder], error) {
	return list[model.Founder](ctx, c, "founders", ListParams{})
}

func (c *Client) ProfileCategories(ctx context.Context) (model.ListResponse[model.ProfileCategory], error) {
	return list[model.ProfileCategory](ctx, c, "profile-categories", ListParams{})
}

// ========================================
// PAGES
// ========================================

func (c *Client) PracticeAreas(ctx context.Context) (model.ListResponse[model.PracticeArea], error) {
	return list[model.PracticeArea](ctx, c, "practice-areas", ListParams{})
}

func (c *Client) PracticeArea(ctx context.Context, slug string) (model.PracticeArea, error) {
	return one[model.PracticeArea](ctx, c, "practice-areas", slug)
}

func (c *Client) Specialists(ctx context.Context) (model.ListResponse[model.Specialist], error) {
	return list[model.Specialist](ctx, c, "specialists", ListParams{})
}

func (c *Client) HeroSlides(ctx context.Context) (model.ListResponse[model.HeroSlide], error) {
	return list[model.HeroSlide](ctx, c, "hero-slides", ListParams{})
}

func (c *Client) AboutUs(ctx context.Context) (model.ListResponse[model.Section], error) {
	return list[model.Section](ctx, c, "about-us", ListParams{})
}

func (c *Client) TentangKantor(ctx context.Context) (model.ListResponse[model.Section], error) {
	return list[model.Section](ctx, c, "tentang-kantor", ListParams{})
}

func (c *Client) ContactInfo(ctx context.Context) (model.ListResponse[model.ContactInfo], error) {
	return list[model.ContactInfo](ctx, c, "contact-info", ListParams{})
}

// ========================================
// CACHE MAINTENANCE
// ========================================

// ListPaths are the list endpoints without query parameters.
var ListPaths = []string{
	"articles", "news", "profiles", "practice-areas", "founders", "specialists",
	"hero-slides", "about-us", "contact-info", "profile-categories", "tentang-kantor",
}

// Refresh refetches a list path and replaces its cached entry. When the
// fetch fails the old entry is kept.
func (c *Client) Refresh(ctx context.Context, path string) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if _, err := c.cache.Revalidate(ctx, u, cache.Options{}); err != nil {
		return fmt.Errorf("refresh %s: %w", path, err)
	}
	return nil
}

// Sweep removes expired entries from the cache.
func (c *Client) Sweep(ctx context.Context) int {
	return c.cache.Sweep(ctx)
}

// ========================================
// HELPERS
// ========================================

func list[T any](ctx context.Context, c *Client, path string, p ListParams) (model.ListResponse[T], error) {
	u := c.baseURL + "/" + path
	if q := p.values(); len(q) > 0 {
		u += "?" + q.Encode()
	}
	out, err := cache.FetchJSON[model.ListResponse[T]](ctx, c.cache, u, cache.Options{})
	if err != nil {
		return out, fmt.Errorf("list %s: %w", path, err)
	}
	if out.Docs == nil {
		out.Docs = []T{}
	}
	return out, nil
}

func one[T any](ctx context.Context, c *Client, path, key string) (T, error) {
	u := c.baseURL + "/" + path + "/" + url.PathEscape(key)
	out, err := cache.FetchJSON[T](ctx, c.cache, u, cache.Options{})
	var httpErr *cache.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return out, ErrNotFound
	}
	if err != nil {
		return out, fmt.Errorf("get %s/%s: %w", path, key, err)
	}
	return out, nil
}
