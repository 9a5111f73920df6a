package model

import "time"

// Article categories. Anything else from the sheet is kept verbatim.
const (
	CategoryArticles = "articles"
	CategoryNews     = "news"
)

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is one row of the articles sheet. News items are articles with
// category "news".
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content,omitempty"`
	Excerpt       string    `json:"excerpt"`
	Category      string    `json:"category"`
	PublishedDate time.Time `json:"publishedDate"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Status        string    `json:"status"`
	Author        string    `json:"author,omitempty"`

	// DateUnknown is set when the sheet date was empty or unparseable and
	// PublishedDate holds the fetch time instead.
	DateUnknown bool `json:"-"`
}

// HasDate reports whether PublishedDate came from the sheet.
func (a Article) HasDate() bool {
	return !a.DateUnknown && !a.PublishedDate.IsZero()
}
