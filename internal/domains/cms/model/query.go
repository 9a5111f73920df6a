package model

// Named sort orders. A leading "-" means descending.
const (
	SortOrder             = "order"
	SortOrderDesc         = "-order"
	SortPublishedDate     = "publishedDate"
	SortPublishedDateDesc = "-publishedDate"
	SortTitle             = "title"
	SortTitleDesc         = "-title"
	SortCategory          = "category"
)

// ArticleQuery filters an article listing. Zero values mean "not set".
// Status "" selects published articles only.
type ArticleQuery struct {
	Category string
	Status   string
	Limit    int
	Sort     string
}

type ProfileQuery struct {
	Category string
	Limit    int
	Sort     string
}

// ListResponse is a decoded list endpoint body, as read by Go consumers.
// The server side writes the same shape through response.List.
type ListResponse[T any] struct {
	Docs      []T `json:"docs"`
	TotalDocs int `json:"totalDocs"`
}
