package service

import (
	"cmp"
	"slices"
	"strings"

	"lawfirm-cms/internal/domains/cms/model"
)

// compareDates orders articles without a sheet date after every dated one,
// in both directions.
func compareDates(a, b model.Article, desc bool) int {
	aok, bok := a.HasDate(), b.HasDate()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	c := a.PublishedDate.Compare(b.PublishedDate)
	if desc {
		return -c
	}
	return c
}

func compareTitles(a, b string, desc bool) int {
	c := strings.Compare(strings.ToLower(a), strings.ToLower(b))
	if desc {
		return -c
	}
	return c
}

// sortArticles applies a named sort. All sorts are stable so ties keep sheet
// order. Unknown names leave items untouched.
func sortArticles(items []model.Article, name string) {
	switch name {
	case model.SortPublishedDate, model.SortPublishedDateDesc:
		desc := name == model.SortPublishedDateDesc
		slices.SortStableFunc(items, func(a, b model.Article) int {
			return compareDates(a, b, desc)
		})
	case model.SortTitle, model.SortTitleDesc:
		desc := name == model.SortTitleDesc
		slices.SortStableFunc(items, func(a, b model.Article) int {
			return compareTitles(a.Title, b.Title, desc)
		})
	}
}

// sortOrdered handles the sorts shared by every record with an order column.
func sortOrdered[T any](items []T, name string, order func(T) int, title func(T) string) {
	switch name {
	case model.SortOrder, model.SortOrderDesc:
		desc := name == model.SortOrderDesc
		slices.SortStableFunc(items, func(a, b T) int {
			c := cmp.Compare(order(a), order(b))
			if desc {
				return -c
			}
			return c
		})
	case model.SortTitle, model.SortTitleDesc:
		desc := name == model.SortTitleDesc
		slices.SortStableFunc(items, func(a, b T) int {
			return compareTitles(title(a), title(b), desc)
		})
	}
}

// sortProfiles adds the seniority sort on top of sortOrdered. Within a tier
// profiles keep their order column.
func sortProfiles(items []model.Profile, name string) {
	if name != model.SortCategory {
		sortOrdered(items, name,
			func(p model.Profile) int { return p.Order },
			func(p model.Profile) string { return p.Name })
		return
	}
	slices.SortStableFunc(items, func(a, b model.Profile) int {
		if c := model.SeniorityRank(a.Category) - model.SeniorityRank(b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
}

func applyLimit[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
