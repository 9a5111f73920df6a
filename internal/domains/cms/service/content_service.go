package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/internal/domains/cms/repository"
	"lawfirm-cms/internal/infrastructure/sheets"
)

type contentService struct {
	repo repository.ContentRepository
	log  zerolog.Logger
}

func NewContentService(repo repository.ContentRepository, log zerolog.Logger) ContentService {
	return &contentService{repo: repo, log: log}
}

// guard runs fn and turns a panic into an empty result. Callers never see
// a failure from the access layer.
func guard[T any](log zerolog.Logger, op string, fn func() []T) (out []T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("op", op).
				Err(fmt.Errorf("panic: %v", r)).
				Msg("content accessor failed, serving empty result")
			out = []T{}
		}
	}()
	out = fn()
	if out == nil {
		out = []T{}
	}
	return out
}

// findBySlugOrID returns the first item whose slug equals key, falling back
// to the first item whose id equals key.
func findBySlugOrID[T any](items []T, key string, slug, id func(T) string) (T, bool) {
	for _, it := range items {
		if slug(it) == key {
			return it, true
		}
	}
	for _, it := range items {
		if id(it) == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// ========================================
// ARTICLES & NEWS
// ========================================

func (s *contentService) GetArticles(ctx context.Context, q model.ArticleQuery) []model.Article {
	return guard(s.log, "GetArticles", func() []model.Article {
		category := strings.ToLower(strings.TrimSpace(q.Category))
		status := strings.ToLower(strings.TrimSpace(q.Status))
		if status == "" {
			status = model.StatusPublished
		}
		sortName := q.Sort
		if sortName == "" {
			sortName = model.SortPublishedDateDesc
		}

		// Limit is not forwarded: the remote might truncate before our
		// filters and sort run.
		rows := s.repo.Articles(ctx, sheets.Filters{
			Category: category,
			Status:   status,
			Sort:     sortName,
		})

		out := make([]model.Article, 0, len(rows))
		for _, a := range rows {
			if category != "" && a.Category != category {
				continue
			}
			if a.Status != status {
				continue
			}
			out = append(out, a)
		}

		sortArticles(out, sortName)
		return applyLimit(out, q.Limit)
	})
}

func (s *contentService) GetArticleBySlug(ctx context.Context, slug string) (model.Article, bool) {
	return findBySlugOrID(s.GetArticles(ctx, model.ArticleQuery{}), slug,
		func(a model.Article) string { return a.Slug },
		func(a model.Article) string { return a.ID })
}

func (s *contentService) GetNews(ctx context.Context, q model.ArticleQuery) []model.Article {
	q.Category = model.CategoryNews
	return s.GetArticles(ctx, q)
}

func (s *contentService) GetNewsBySlug(ctx context.Context, slug string) (model.Article, bool) {
	return findBySlugOrID(s.GetNews(ctx, model.ArticleQuery{}), slug,
		func(a model.Article) string { return a.Slug },
		func(a model.Article) string { return a.ID })
}

// ========================================
// PEOPLE
// ========================================

func (s *contentService) GetProfiles(ctx context.Context, q model.ProfileQuery) []model.Profile {
	return guard(s.log, "GetProfiles", func() []model.Profile {
		sortName := q.Sort
		if sortName == "" {
			sortName = model.SortOrder
		}

		rows := s.repo.Profiles(ctx, sheets.Filters{Category: q.Category, Sort: sortName})

		out := make([]model.Profile, 0, len(rows))
		for _, p := range rows {
			if q.Category != "" && p.Category != q.Category {
				continue
			}
			out = append(out, p)
		}

		sortProfiles(out, sortName)
		return applyLimit(out, q.Limit)
	})
}

func (s *contentService) GetProfileByID(ctx context.Context, id string) (model.Profile, bool) {
	return findBySlugOrID(s.GetProfiles(ctx, model.ProfileQuery{}), id,
		func(p model.Profile) string { return p.Slug },
		func(p model.Profile) string { return p.ID })
}

func (s *contentService) GetFounders(ctx context.Context) []model.Founder {
	return guard(s.log, "GetFounders", func() []model.Founder {
		out := s.repo.Founders(ctx)
		sortOrdered(out, model.SortOrder,
			func(f model.Founder) int { return f.Order },
			func(f model.Founder) string { return f.Name })
		return out
	})
}

func (s *contentService) GetProfileCategories(ctx context.Context) []model.ProfileCategory {
	return guard(s.log, "GetProfileCategories", func() []model.ProfileCategory {
		out := s.repo.ProfileCategories(ctx)
		sortOrdered(out, model.SortOrder,
			func(c model.ProfileCategory) int { return c.Order },
			func(c model.ProfileCategory) string { return c.Name })
		return out
	})
}

// ========================================
// PAGES
// ========================================

func (s *contentService) GetPracticeAreas(ctx context.Context) []model.PracticeArea {
	return guard(s.log, "GetPracticeAreas", func() []model.PracticeArea {
		out := s.repo.PracticeAreas(ctx)
		sortOrdered(out, model.SortOrder,
			func(p model.PracticeArea) int { return p.Order },
			func(p model.PracticeArea) string { return p.Title })
		return out
	})
}

func (s *contentService) GetPracticeAreaBySlug(ctx context.Context, slug string) (model.PracticeArea, bool) {
	return findBySlugOrID(s.GetPracticeAreas(ctx), slug,
		func(p model.PracticeArea) string { return p.Slug },
		func(p model.PracticeArea) string { return p.ID })
}

func (s *contentService) GetSpecialists(ctx context.Context) []model.Specialist {
	return guard(s.log, "GetSpecialists", func() []model.Specialist {
		out := s.repo.Specialists(ctx)
		sortOrdered(out, model.SortOrder,
			func(sp model.Specialist) int { return sp.Order },
			func(sp model.Specialist) string { return sp.Title })
		return out
	})
}

func (s *contentService) GetHeroSlides(ctx context.Context) []model.HeroSlide {
	return guard(s.log, "GetHeroSlides", func() []model.HeroSlide {
		rows := s.repo.HeroSlides(ctx, sheets.Filters{})

		out := make([]model.HeroSlide, 0, len(rows))
		for _, h := range rows {
			if h.Active {
				out = append(out, h)
			}
		}
		sortOrdered(out, model.SortOrder,
			func(h model.HeroSlide) int { return h.Order },
			func(h model.HeroSlide) string { return h.Title })
		return out
	})
}

func (s *contentService) GetAboutUs(ctx context.Context) []model.Section {
	return s.sections(ctx, "GetAboutUs", sheets.TableAboutUs)
}

func (s *contentService) GetTentangKantor(ctx context.Context) []model.Section {
	return s.sections(ctx, "GetTentangKantor", sheets.TableTentangKantor)
}

func (s *contentService) sections(ctx context.Context, op, table string) []model.Section {
	return guard(s.log, op, func() []model.Section {
		out := s.repo.Sections(ctx, table)
		sortOrdered(out, model.SortOrder,
			func(sec model.Section) int { return sec.Order },
			func(sec model.Section) string { return sec.Title })
		return out
	})
}

func (s *contentService) GetContactInfo(ctx context.Context) []model.ContactInfo {
	return guard(s.log, "GetContactInfo", func() []model.ContactInfo {
		out := s.repo.ContactInfo(ctx)
		sortOrdered(out, model.SortOrder,
			func(c model.ContactInfo) int { return c.Order },
			func(c model.ContactInfo) string { return c.Label })
		return out
	})
}

func (s *contentService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
