package repository

import (
	"context"
	"strings"
	"time"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/internal/infrastructure/sheets"
	"lawfirm-cms/internal/shared/utils"
)

type sheetRepository struct {
	client *sheets.Client
	now    func() time.Time
}

// NewSheetRepository maps rows read through client into domain records.
// now supplies the fallback publish date; nil means time.Now.
func NewSheetRepository(client *sheets.Client, now func() time.Time) ContentRepository {
	if now == nil {
		now = time.Now
	}
	return &sheetRepository{client: client, now: now}
}

func (r *sheetRepository) Articles(ctx context.Context, filters sheets.Filters) []model.Article {
	rows := r.client.FetchTable(ctx, sheets.TableArticles, filters)
	now := r.now()

	out := make([]model.Article, 0, len(rows))
	for i, row := range rows {
		title := strings.TrimSpace(row.Get("title"))
		slug := strings.TrimSpace(row.Get("slug"))
		if slug == "" {
			slug = utils.TitleSlug(title)
		}

		category := strings.ToLower(strings.TrimSpace(row.Get("category")))
		if category == "" {
			category = model.CategoryArticles
		}

		status := strings.ToLower(strings.TrimSpace(row.Get("status")))
		if status == "" {
			status = model.StatusDraft
		}

		published, dated := ParseDate(row.Get("publishedDate", "published_date", "date"))
		if !dated {
			published = now
		}

		out = append(out, model.Article{
			ID:            rowID(row, i),
			Title:         title,
			Slug:          slug,
			Content:       row.Get("content"),
			Excerpt:       row.Get("excerpt"),
			Category:      category,
			PublishedDate: published,
			FeaturedImage: row.Get("featuredImage", "featured_image", "image"),
			Status:        status,
			Author:        row.Get("author"),
			DateUnknown:   !dated,
		})
	}
	return out
}

func (r *sheetRepository) Profiles(ctx context.Context, filters sheets.Filters) []model.Profile {
	rows := r.client.FetchTable(ctx, sheets.TableProfiles, filters)

	out := make([]model.Profile, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Get("name"))
		slug := strings.TrimSpace(row.Get("slug"))
		if slug == "" {
			slug = utils.TitleSlug(name)
		}
		out = append(out, model.Profile{
			ID:             rowID(row, i),
			Name:           name,
			Slug:           slug,
			Title:          row.Get("title", "position"),
			Category:       strings.TrimSpace(row.Get("category")),
			Email:          row.Get("email"),
			Phone:          row.Get("phone"),
			Education:      row.Get("education"),
			Specialization: row.Get("specialization"),
			Experience:     row.Get("experience"),
			Photo:          row.Get("photo", "image"),
			Order:          rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) PracticeAreas(ctx context.Context) []model.PracticeArea {
	rows := r.client.FetchTable(ctx, sheets.TablePracticeAreas, sheets.Filters{})

	out := make([]model.PracticeArea, 0, len(rows))
	for i, row := range rows {
		title := strings.TrimSpace(row.Get("title"))
		out = append(out, model.PracticeArea{
			ID:          rowID(row, i),
			Title:       title,
			Slug:        utils.GenerateSlug(title),
			Description: row.Get("description"),
			Icon:        row.Get("icon"),
			Order:       rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) Founders(ctx context.Context) []model.Founder {
	rows := r.client.FetchTable(ctx, sheets.TableFounders, sheets.Filters{})

	out := make([]model.Founder, 0, len(rows))
	for i, row := range rows {
		out = append(out, model.Founder{
			ID:          rowID(row, i),
			Name:        strings.TrimSpace(row.Get("name")),
			Title:       row.Get("title", "position"),
			Description: row.Get("description", "bio"),
			Photo:       row.Get("photo", "image"),
			Order:       rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) Specialists(ctx context.Context) []model.Specialist {
	rows := r.client.FetchTable(ctx, sheets.TableSpecialists, sheets.Filters{})

	out := make([]model.Specialist, 0, len(rows))
	for i, row := range rows {
		out = append(out, model.Specialist{
			ID:          rowID(row, i),
			Title:       strings.TrimSpace(row.Get("title")),
			Subtitle:    row.Get("subtitle"),
			Description: row.Get("description"),
			Icon:        row.Get("icon"),
			Order:       rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) HeroSlides(ctx context.Context, filters sheets.Filters) []model.HeroSlide {
	rows := r.client.FetchTable(ctx, sheets.TableHeroSlides, filters)

	out := make([]model.HeroSlide, 0, len(rows))
	for i, row := range rows {
		out = append(out, model.HeroSlide{
			ID:       rowID(row, i),
			Title:    strings.TrimSpace(row.Get("title")),
			Subtitle: row.Get("subtitle"),
			Image:    row.Get("image"),
			CTAText:  row.Get("ctaText", "cta_text", "buttonText"),
			CTALink:  row.Get("ctaLink", "cta_link", "buttonLink"),
			Order:    rowOrder(row, i),
			Active:   IsActive(row["active"]),
		})
	}
	return out
}

func (r *sheetRepository) Sections(ctx context.Context, table string) []model.Section {
	rows := r.client.FetchTable(ctx, table, sheets.Filters{})

	out := make([]model.Section, 0, len(rows))
	for i, row := range rows {
		out = append(out, model.Section{
			ID:       rowID(row, i),
			Title:    strings.TrimSpace(row.Get("title", "section")),
			Subtitle: row.Get("subtitle"),
			Content:  row.Get("content", "description"),
			Image:    row.Get("image"),
			Order:    rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) ContactInfo(ctx context.Context) []model.ContactInfo {
	rows := r.client.FetchTable(ctx, sheets.TableContactInfo, sheets.Filters{})

	out := make([]model.ContactInfo, 0, len(rows))
	for i, row := range rows {
		out = append(out, model.ContactInfo{
			ID:    rowID(row, i),
			Type:  strings.ToLower(strings.TrimSpace(row.Get("type"))),
			Label: row.Get("label", "title"),
			Value: row.Get("value"),
			Icon:  row.Get("icon"),
			Link:  row.Get("link", "url"),
			Order: rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) ProfileCategories(ctx context.Context) []model.ProfileCategory {
	rows := r.client.FetchTable(ctx, sheets.TableProfileCategories, sheets.Filters{})

	out := make([]model.ProfileCategory, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Get("name", "title"))
		slug := strings.TrimSpace(row.Get("slug"))
		if slug == "" {
			slug = utils.GenerateSlug(name)
		}
		out = append(out, model.ProfileCategory{
			ID:          rowID(row, i),
			Name:        name,
			Slug:        slug,
			Description: row.Get("description"),
			Order:       rowOrder(row, i),
		})
	}
	return out
}

func (r *sheetRepository) Ping(ctx context.Context) error {
	_, err := r.client.Query(ctx, sheets.TableProfileCategories, sheets.Filters{Limit: "1"})
	return err
}
