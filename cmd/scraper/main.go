package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"glassdoor-scraper/internal/browser"
	"glassdoor-scraper/internal/config"
	"glassdoor-scraper/internal/dedup"
	"glassdoor-scraper/internal/reporter"
	"glassdoor-scraper/internal/scraper"
	"glassdoor-scraper/internal/scraper/glassdoor"
	"glassdoor-scraper/utils"

	"github.com/playwright-community/playwright-go"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <keyword> <place>\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), `eg: scraper "android-developer" "boston-ma"`)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	keyword, place := flag.Arg(0), flag.Arg(1)

	//load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Fetching job details")
	listings, stats, scrapeErr := scrape(ctx, cfg, keyword, place)
	if isFatal(scrapeErr) {
		notify(cfg, reporter.Summary{Site: "Glassdoor", Keyword: keyword, Place: place, Err: scrapeErr})
		log.Fatalf("❌ Scrape failed: %v", scrapeErr)
	}
	if scrapeErr != nil {
		log.Printf("⚠️ Scrape interrupted, writing %d collected listings: %v", len(listings), scrapeErr)
	}

	fmt.Println("Writing data to output file")
	outPath := reporter.OutputPath(cfg.OutputDir, keyword, place)
	if err := reporter.SaveCSV(outPath, listings); err != nil {
		log.Fatalf("❌ Failed to save results: %v", err)
	}
	if len(listings) == 0 {
		fmt.Printf("Your search for %s, in %s does not match any jobs\n", keyword, place)
	}
	log.Printf("📁 %d listings saved to %s", len(listings), outPath)

	notify(cfg, reporter.Summary{
		Site:       "Glassdoor",
		Keyword:    keyword,
		Place:      place,
		Links:      stats.Links,
		Scraped:    stats.Scraped,
		Skipped:    stats.Skipped,
		OutputPath: outPath,
	})

	log.Println("🏁 Execution finished.")
}

// isFatal reports whether err should stop the run before anything is written.
// An interrupted run still writes what it collected, even if that is only the header.
func isFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// scrape owns the browser session; it is closed before returning whatever happened.
func scrape(ctx context.Context, cfg *config.Config, keyword, place string) ([]scraper.Listing, glassdoor.Stats, error) {
	opts := browser.Options{
		Headless:      cfg.Headless,
		NavTimeout:    cfg.NavTimeout(),
		ScrollResults: cfg.ScrollResults,
	}
	if cfg.ScreenshotDir != "" {
		shots, err := utils.NewScreenShotDebugger(cfg.ScreenshotDir)
		if err != nil {
			log.Printf("⚠️ Screenshots disabled: %v", err)
		} else {
			opts.Screenshots = shots
		}
	}

	//init playwright manager
	pwManager, err := browser.NewPlaywright(ctx, opts)
	if err != nil {
		return nil, glassdoor.Stats{}, err
	}
	defer func() {
		if err := pwManager.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser: %v", err)
		}
	}()

	//load cookies
	var cookies []playwright.OptionalCookie
	if cfg.CookiesFile != "" {
		cookies, err = browser.LoadCookies(cfg.CookiesFile)
		if err != nil {
			log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
		} else {
			log.Printf("🍪 Loaded %d cookies", len(cookies))
		}
	}
	if _, err := pwManager.NewContext(cookies); err != nil {
		return nil, glassdoor.Stats{}, err
	}
	log.Println("✅ Browser initialized successfully!")

	var cache glassdoor.SeenCache
	if cfg.CachePath != "" {
		listingCache, err := dedup.NewListingCache(cfg.CachePath, dedup.DefaultTTL)
		if err != nil {
			log.Printf("⚠️ Seen-cache disabled: %v", err)
		} else {
			cache = listingCache
		}
	}

	s, err := glassdoor.NewGlassdoorScraper(cfg, pwManager, cache)
	if err != nil {
		return nil, glassdoor.Stats{}, err
	}

	log.Printf("▶️ Starting scraper: %s", s.Name())
	listings, err := s.Scrape(ctx, keyword, place)
	stats := s.Stats()
	log.Printf("✅ Scraper %s finished. %d/%d listings collected, %d skipped.", s.Name(), stats.Scraped, stats.Links, stats.Skipped)
	return listings, stats, err
}

func notify(cfg *config.Config, summary reporter.Summary) {
	if !cfg.NotifyEnabled() {
		return
	}
	tg, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		return
	}
	if err := tg.SendSummary(summary); err != nil {
		log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
	}
}
