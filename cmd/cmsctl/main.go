package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"lawfirm-cms/internal/config"
	"lawfirm-cms/pkg/cache"
	"lawfirm-cms/pkg/cmsclient"
	"lawfirm-cms/pkg/container"
	"lawfirm-cms/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	opts, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		printUsage()
		os.Exit(1)
	}

	logger.Init("development", getEnv("LOG_LEVEL", "warn"))

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	storage, closeStorage := container.NewCacheStorage(ctx, redisConfigFromEnv())
	defer closeStorage()

	rc := cache.NewResponseCache(storage,
		cache.WithTTL(opts.ttl),
		cache.WithLogger(logger.Component("cmsctl")),
		cache.WithSingleFlight(),
	)
	client := cmsclient.New(opts.baseURL, rc)

	command, args := opts.command, opts.args

	var result any
	switch command {
	case "articles", "news", "profiles":
		listFlags := flag.NewFlagSet(command, flag.ExitOnError)
		category := listFlags.String("category", "", "Filter by category")
		status := listFlags.String("status", "", "Filter by status (articles only)")
		limit := listFlags.Int("limit", 0, "Maximum number of items")
		sortName := listFlags.String("sort", "", "Sort order, e.g. -publishedDate or order")
		listFlags.Parse(args)

		p := cmsclient.ListParams{Category: *category, Status: *status, Limit: *limit, Sort: *sortName}
		switch command {
		case "articles":
			result, err = client.Articles(ctx, p)
		case "news":
			result, err = client.News(ctx, p)
		default:
			result, err = client.Profiles(ctx, p)
		}
	case "article", "news-item", "profile", "practice-area":
		if len(args) < 1 {
			fmt.Printf("Error: %s requires a slug or id\n", command)
			os.Exit(1)
		}
		switch command {
		case "article":
			result, err = client.Article(ctx, args[0])
		case "news-item":
			result, err = client.NewsItem(ctx, args[0])
		case "profile":
			result, err = client.Profile(ctx, args[0])
		default:
			result, err = client.PracticeArea(ctx, args[0])
		}
	case "practice-areas":
		result, err = client.PracticeAreas(ctx)
	case "founders":
		result, err = client.Founders(ctx)
	case "specialists":
		result, err = client.Specialists(ctx)
	case "hero-slides":
		result, err = client.HeroSlides(ctx)
	case "about-us":
		result, err = client.AboutUs(ctx)
	case "tentang-kantor":
		result, err = client.TentangKantor(ctx)
	case "contact-info":
		result, err = client.ContactInfo(ctx)
	case "profile-categories":
		result, err = client.ProfileCategories(ctx)
	case "sweep":
		result = map[string]int{"removed": rc.Sweep(ctx)}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, cmsclient.ErrNotFound) {
		fmt.Println("Not found")
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("❌ %s failed: %v", command, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("❌ encode output: %v", err)
	}
}

type globalOptions struct {
	baseURL string
	ttl     time.Duration
	timeout time.Duration
	command string
	args    []string
}

// parseGlobalFlags reads the flags before the command. Both --api=<url> and
// --api <url> forms are accepted.
func parseGlobalFlags(argv []string) (globalOptions, error) {
	globalFlags := flag.NewFlagSet("global", flag.ContinueOnError)
	baseURL := globalFlags.String("api", getEnv("CMS_API_URL", "http://localhost:8080/api/cms"), "Content API base URL")
	ttl := globalFlags.Duration("ttl", cache.DefaultTTL, "Response cache TTL")
	timeout := globalFlags.Duration("timeout", 15*time.Second, "Overall command timeout")

	if err := globalFlags.Parse(argv); err != nil {
		return globalOptions{}, err
	}
	if globalFlags.NArg() == 0 {
		return globalOptions{}, errors.New("missing command")
	}

	return globalOptions{
		baseURL: *baseURL,
		ttl:     *ttl,
		timeout: *timeout,
		command: globalFlags.Arg(0),
		args:    globalFlags.Args()[1:],
	}, nil
}

// redisConfigFromEnv reads the same REDIS_* keys as the server and worker,
// so all three share one cache database.
func redisConfigFromEnv() config.RedisConfig {
	return config.RedisConfig{
		Host:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       cast.ToInt(os.Getenv("REDIS_DB")),
	}
}

func printUsage() {
	fmt.Println("cmsctl - read the law firm content API")
	fmt.Println()
	fmt.Println("Usage: cmsctl [--api <url>] [--ttl=5m] [--timeout=15s] <command> [flags] [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  articles|news|profiles [--category] [--status] [--limit] [--sort]")
	fmt.Println("  article|news-item <slug>       Single article or news item")
	fmt.Println("  profile <id|slug>              Single profile")
	fmt.Println("  practice-area <slug>           Single practice area")
	fmt.Println("  practice-areas, founders, specialists, hero-slides, about-us,")
	fmt.Println("  tentang-kantor, contact-info, profile-categories")
	fmt.Println("  sweep                          Remove expired cache entries")
	fmt.Println()
	fmt.Println("Responses are cached in Redis when REDIS_HOST is set, in memory otherwise.")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
