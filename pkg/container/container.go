package container

import (
	"fmt"
	"log"
	"time"

	"lawfirm-cms/internal/config"
	"lawfirm-cms/internal/infrastructure/sheets"
	"lawfirm-cms/internal/shared/middleware"
	"lawfirm-cms/pkg/jwt"
	"lawfirm-cms/pkg/logger"

	cmsHandler "lawfirm-cms/internal/domains/cms/handler"
	cmsRepo "lawfirm-cms/internal/domains/cms/repository"
	cmsService "lawfirm-cms/internal/domains/cms/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API server.
// Everything is a singleton for the lifetime of the process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config       *config.Config
	SheetsClient *sheets.Client
	JWTManager   *jwt.Manager
	RateLimiter  *middleware.IPRateLimiter

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	ContentRepo cmsRepo.ContentRepository

	// ========================================
	// SERVICE LAYER
	// ========================================

	ContentService cmsService.ContentService
	AdminService   cmsService.AdminService

	// ========================================
	// HANDLER LAYER
	// ========================================

	ContentHandler *cmsHandler.ContentHandler
	AdminHandler   *cmsHandler.AdminHandler

	stop chan struct{}
}

// NewContainer loads config from the environment and builds the graph.
func NewContainer() (*Container, error) {
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig builds the graph from an already loaded config.
//
// Order matters:
// 1. Infrastructure (content source, JWT, rate limiter)
// 2. Repositories
// 3. Services
// 4. Handlers
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{Config: cfg, stop: make(chan struct{})}

	// ========================================
	// STEP 1: INFRASTRUCTURE
	// ========================================
	source, err := NewContentSource(cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to init content source: %w", err)
	}
	if source == nil {
		log.Println("⚠️  No content source configured, every endpoint will serve empty lists")
	}

	c.SheetsClient = sheets.NewClient(source, logger.Component("sheets"))
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
		cfg.App.Name,
	)
	c.RateLimiter = middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go c.sweepRateLimiter(time.Minute)

	// ========================================
	// STEP 2-4: DOMAIN LAYERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// NewContentSource picks the Remote Content Source from config. The web app
// wins over a local workbook. Neither configured returns (nil, nil).
func NewContentSource(cfg config.SheetsConfig) (sheets.Source, error) {
	switch {
	case cfg.WebAppURL != "":
		log.Println("📡 Using spreadsheet web app content source")
		return sheets.NewWebAppSource(cfg.WebAppURL, cfg.Timeout), nil
	case cfg.WorkbookPath != "":
		log.Printf("📗 Using workbook content source: %s", cfg.WorkbookPath)
		return sheets.NewWorkbookSource(cfg.WorkbookPath), nil
	default:
		return nil, nil
	}
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.ContentRepo = cmsRepo.NewSheetRepository(c.SheetsClient, time.Now)
}

func (c *Container) initServices() {
	c.ContentService = cmsService.NewContentService(c.ContentRepo, logger.Component("content"))
	c.AdminService = cmsService.NewAdminService(
		c.SheetsClient,
		c.JWTManager,
		cmsService.AdminCredentials{
			Username:     c.Config.Admin.Username,
			PasswordHash: c.Config.Admin.PasswordHash,
		},
		logger.Component("admin"),
	)
}

func (c *Container) initHandlers() {
	c.ContentHandler = cmsHandler.NewContentHandler(
		c.ContentService,
		c.Config.HTTPCache.MaxAge,
		c.Config.HTTPCache.StaleWhileRevalidate,
	)
	c.AdminHandler = cmsHandler.NewAdminHandler(c.AdminService, c.JWTManager)
}

// sweepRateLimiter drops idle rate limit buckets until Cleanup.
func (c *Container) sweepRateLimiter(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.RateLimiter.Cleanup()
		case <-c.stop:
			return
		}
	}
}

// Cleanup releases resources on shutdown. Safe to call once.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	close(c.stop)

	log.Println("✅ Container cleanup completed")
}
