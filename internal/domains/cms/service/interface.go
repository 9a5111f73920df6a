package service

import (
	"context"

	"lawfirm-cms/internal/domains/cms/model"
)

// =====================================================
// CONTENT SERVICE INTERFACE
// =====================================================

// ContentService is the content access layer. Listings never fail: a broken
// source or a malformed row yields an empty (or shorter) result. Lookups
// report a miss with ok=false.
type ContentService interface {
	// ========================================
	// ARTICLES & NEWS
	// ========================================

	// GetArticles lists articles. Without q.Status only published ones are returned.
	GetArticles(ctx context.Context, q model.ArticleQuery) []model.Article
	// GetArticleBySlug matches slug first, then id.
	GetArticleBySlug(ctx context.Context, slug string) (model.Article, bool)
	// GetNews is GetArticles restricted to the news category.
	GetNews(ctx context.Context, q model.ArticleQuery) []model.Article
	GetNewsBySlug(ctx context.Context, slug string) (model.Article, bool)

	// ========================================
	// PEOPLE
	// ========================================

	GetProfiles(ctx context.Context, q model.ProfileQuery) []model.Profile
	// GetProfileByID matches slug first, then id.
	GetProfileByID(ctx context.Context, id string) (model.Profile, bool)
	GetFounders(ctx context.Context) []model.Founder
	GetProfileCategories(ctx context.Context) []model.ProfileCategory

	// ========================================
	// PAGES
	// ========================================

	GetPracticeAreas(ctx context.Context) []model.PracticeArea
	GetPracticeAreaBySlug(ctx context.Context, slug string) (model.PracticeArea, bool)
	GetSpecialists(ctx context.Context) []model.Specialist
	// GetHeroSlides returns active slides only.
	GetHeroSlides(ctx context.Context) []model.HeroSlide
	GetAboutUs(ctx context.Context) []model.Section
	GetTentangKantor(ctx context.Context) []model.Section
	GetContactInfo(ctx context.Context) []model.ContactInfo

	// Ready reports whether the content source answers.
	Ready(ctx context.Context) error
}
