package repository

import (
	"context"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/internal/infrastructure/sheets"
)

// =====================================================
// CONTENT REPOSITORY INTERFACE
// =====================================================

// ContentRepository reads typed content from the spreadsheet backend.
// Every method returns rows in sheet order with defaults already applied.
// Source failures surface as empty slices.
type ContentRepository interface {
	Articles(ctx context.Context, filters sheets.Filters) []model.Article
	Profiles(ctx context.Context, filters sheets.Filters) []model.Profile
	PracticeAreas(ctx context.Context) []model.PracticeArea
	Founders(ctx context.Context) []model.Founder
	Specialists(ctx context.Context) []model.Specialist
	HeroSlides(ctx context.Context, filters sheets.Filters) []model.HeroSlide
	Sections(ctx context.Context, table string) []model.Section
	ContactInfo(ctx context.Context) []model.ContactInfo
	ProfileCategories(ctx context.Context) []model.ProfileCategory

	// Ping reads a small table and returns the source error, if any.
	Ping(ctx context.Context) error
}
