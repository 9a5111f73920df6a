package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/internal/domains/cms/service"
	"lawfirm-cms/internal/shared/response"
)

// ContentHandler serves the public read endpoints under /api/cms.
// Every list endpoint answers 200 with {docs, totalDocs}; a broken content
// source shows up as an empty list, not an error.
type ContentHandler struct {
	service      service.ContentService
	cacheControl string
}

// NewContentHandler builds the handler. maxAge and staleWhileRevalidate are
// seconds for the shared-cache directives of list responses.
func NewContentHandler(svc service.ContentService, maxAge, staleWhileRevalidate int) *ContentHandler {
	return &ContentHandler{
		service:      svc,
		cacheControl: fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", maxAge, staleWhileRevalidate),
	}
}

// RegisterRoutes mounts the read endpoints on rg.
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/articles", h.ListArticles)
	rg.GET("/articles/:slug", h.GetArticle)
	rg.GET("/news", h.ListNews)
	rg.GET("/news/:slug", h.GetNews)
	rg.GET("/profiles", h.ListProfiles)
	rg.GET("/profiles/:id", h.GetProfile)
	rg.GET("/practice-areas", h.ListPracticeAreas)
	rg.GET("/practice-areas/:slug", h.GetPracticeArea)
	rg.GET("/founders", h.ListFounders)
	rg.GET("/specialists", h.ListSpecialists)
	rg.GET("/hero-slides", h.ListHeroSlides)
	rg.GET("/about-us", h.ListAboutUs)
	rg.GET("/contact-info", h.ListContactInfo)
	rg.GET("/profile-categories", h.ListProfileCategories)
	rg.GET("/tentang-kantor", h.ListTentangKantor)
}

// ========================================
// ARTICLES & NEWS
// ========================================

// ListArticles handles GET /articles?category=&status=&limit=&sort=
func (h *ContentHandler) ListArticles(c *gin.Context) {
	q := articleQuery(c)
	list(c, h.cacheControl, h.service.GetArticles(c.Request.Context(), q))
}

// GetArticle handles GET /articles/:slug
func (h *ContentHandler) GetArticle(c *gin.Context) {
	article, ok := h.service.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	h.one(c, article, ok, model.ErrArticleNotFound)
}

// ListNews handles GET /news?limit=&sort=
func (h *ContentHandler) ListNews(c *gin.Context) {
	q := articleQuery(c)
	list(c, h.cacheControl, h.service.GetNews(c.Request.Context(), q))
}

// GetNews handles GET /news/:slug
func (h *ContentHandler) GetNews(c *gin.Context) {
	news, ok := h.service.GetNewsBySlug(c.Request.Context(), c.Param("slug"))
	h.one(c, news, ok, model.ErrNewsNotFound)
}

// ========================================
// PEOPLE
// ========================================

// ListProfiles handles GET /profiles?category=&limit=&sort=
func (h *ContentHandler) ListProfiles(c *gin.Context) {
	q := model.ProfileQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Limit:    parseLimit(c.Query("limit")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	list(c, h.cacheControl, h.service.GetProfiles(c.Request.Context(), q))
}

// GetProfile handles GET /profiles/:id (id or slug)
func (h *ContentHandler) GetProfile(c *gin.Context) {
	profile, ok := h.service.GetProfileByID(c.Request.Context(), c.Param("id"))
	h.one(c, profile, ok, model.ErrProfileNotFound)
}

func (h *ContentHandler) ListFounders(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetFounders(c.Request.Context()))
}

func (h *ContentHandler) ListProfileCategories(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetProfileCategories(c.Request.Context()))
}

// ========================================
// PAGES
// ========================================

func (h *ContentHandler) ListPracticeAreas(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetPracticeAreas(c.Request.Context()))
}

func (h *ContentHandler) GetPracticeArea(c *gin.Context) {
	area, ok := h.service.GetPracticeAreaBySlug(c.Request.Context(), c.Param("slug"))
	h.one(c, area, ok, model.ErrPracticeAreaNotFound)
}

func (h *ContentHandler) ListSpecialists(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetSpecialists(c.Request.Context()))
}

func (h *ContentHandler) ListHeroSlides(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetHeroSlides(c.Request.Context()))
}

func (h *ContentHandler) ListAboutUs(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetAboutUs(c.Request.Context()))
}

func (h *ContentHandler) ListTentangKantor(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetTentangKantor(c.Request.Context()))
}

func (h *ContentHandler) ListContactInfo(c *gin.Context) {
	list(c, h.cacheControl, h.service.GetContactInfo(c.Request.Context()))
}

// ========================================
// HELPERS
// ========================================

// list writes docs with the shared-cache header.
func list[T any](c *gin.Context, cacheControl string, docs []T) {
	c.Header("Cache-Control", cacheControl)
	response.List(c, docs)
}

func (h *ContentHandler) one(c *gin.Context, item any, ok bool, notFound *model.CMSError) {
	if !ok {
		response.ErrorWithCode(c, model.GetHTTPStatusCode(notFound), notFound.Code, notFound.Message)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func articleQuery(c *gin.Context) model.ArticleQuery {
	return model.ArticleQuery{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    parseLimit(c.Query("limit")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
}

// parseLimit accepts a positive integer. Anything else means no limit.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
