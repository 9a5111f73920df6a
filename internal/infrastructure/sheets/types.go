package sheets

import (
	"context"
	"encoding/json"
	"net/url"
)

// Table names known to the Remote Content Source.
// One sheet per content type.
const (
	TableArticles          = "articles"
	TableProfiles          = "profiles"
	TablePracticeAreas     = "practice_areas"
	TableFounders          = "founders"
	TableSpecialists       = "specialists"
	TableHeroSlides        = "hero_slides"
	TableAboutUs           = "about_us"
	TableContactInfo       = "contact_info"
	TableProfileCategories = "profile_categories"
	TableTentangKantor     = "tentang_kantor"
)

var knownTables = map[string]bool{
	TableArticles:          true,
	TableProfiles:          true,
	TablePracticeAreas:     true,
	TableFounders:          true,
	TableSpecialists:       true,
	TableHeroSlides:        true,
	TableAboutUs:           true,
	TableContactInfo:       true,
	TableProfileCategories: true,
	TableTentangKantor:     true,
}

// IsKnownTable reports whether name is one of the content tables.
func IsKnownTable(name string) bool {
	return knownTables[name]
}

// Row is one spreadsheet row keyed by column header.
// The backing store has no column typing, so every value is a string.
type Row map[string]string

// Get returns the value of the first key that is present and non-empty.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Filters are passthrough query parameters for the remote side.
// Empty fields are not sent.
type Filters struct {
	Category string
	Status   string
	Active   string
	Limit    string
	Sort     string
}

func (f Filters) apply(q url.Values) {
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("category", f.Category)
	set("status", f.Status)
	set("active", f.Active)
	set("limit", f.Limit)
	set("sort", f.Sort)
}

// Source reads rows of a table from a Remote Content Source.
type Source interface {
	Query(ctx context.Context, table string, filters Filters) ([]Row, error)
}

// Writer is implemented by sources that accept the append/update/delete
// command protocol.
type Writer interface {
	Append(ctx context.Context, table string, data map[string]any) (Row, error)
	Update(ctx context.Context, table, id string, data map[string]any) (Row, error)
	Delete(ctx context.Context, table, id string) error
}

// envelope is the JSON body returned by the web app for every action.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}
