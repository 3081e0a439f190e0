package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"glassdoor-scraper/internal/scraper"
	"glassdoor-scraper/utils"

	"github.com/playwright-community/playwright-go"
)

var (
	_ scraper.PageLoader      = (*PlaywrightManager)(nil)
	_ scraper.ResultsLoader   = (*PlaywrightManager)(nil)
	_ scraper.FailureRecorder = (*PlaywrightManager)(nil)
)

type Options struct {
	Headless   bool
	NavTimeout time.Duration
	// ScrollResults scrolls result pages to the bottom so lazy cards render.
	ScrollResults bool
	// Screenshots, when set, captures pages that fail to load or parse.
	Screenshots *utils.ScreenShotDebugger
}

// PlaywrightManager owns one Chromium session: driver, browser and a single context.
// It is used serially.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	opts    Options
}

func NewPlaywright(ctx context.Context, opts Options) (*PlaywrightManager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &PlaywrightManager{
		pw:      pw,
		browser: browser,
		opts:    opts,
	}, nil
}

// NewContext creates the browser context every page is opened in.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	if pm.context != nil {
		return nil, errors.New("browser context already created")
	}

	browserCtx, err := pm.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	if len(cookies) > 0 {
		if err := browserCtx.AddCookies(cookies); err != nil {
			browserCtx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
	}
	pm.context = browserCtx
	return browserCtx, nil
}

// Load opens url in a fresh page, waits for the load event and returns the rendered HTML.
// The page is always closed.
func (pm *PlaywrightManager) Load(ctx context.Context, url string) ([]byte, error) {
	return pm.load(ctx, url, false)
}

// LoadResults is Load for a search result page, scrolled when ScrollResults is set.
func (pm *PlaywrightManager) LoadResults(ctx context.Context, url string) ([]byte, error) {
	return pm.load(ctx, url, pm.opts.ScrollResults)
}

func (pm *PlaywrightManager) load(ctx context.Context, url string, scroll bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pm.context == nil {
		if _, err := pm.NewContext(nil); err != nil {
			return nil, err
		}
	}

	page, err := pm.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	defer page.Close()

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(float64(pm.opts.NavTimeout.Milliseconds())),
	}); err != nil {
		if pm.opts.Screenshots != nil {
			pm.opts.Screenshots.CaptureAndLog(page, "load-failed", fmt.Sprintf("Failed to load %s", url))
		}
		return nil, fmt.Errorf("navigate: %w", err)
	}

	if scroll {
		if err := utils.SmoothScroll(page); err != nil {
			log.Printf("⚠️ Scroll failed on %s: %v", url, err)
		}
	}

	content, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return []byte(content), nil
}

// RecordFailure renders content that could not be parsed and screenshots it.
// The site is not requested again.
func (pm *PlaywrightManager) RecordFailure(url string, content []byte) {
	if pm.opts.Screenshots == nil || pm.context == nil {
		return
	}

	page, err := pm.context.NewPage()
	if err != nil {
		log.Printf("⚠️ Could not create page for screenshot: %v", err)
		return
	}
	defer page.Close()

	if err := page.SetContent(string(content)); err != nil {
		log.Printf("⚠️ Could not render %s for screenshot: %v", url, err)
		return
	}
	pm.opts.Screenshots.CaptureAndLog(page, "parse-failed", fmt.Sprintf("Failed to parse %s", url))
}

// Close tears down context, browser and driver in that order.
func (pm *PlaywrightManager) Close() error {
	var errs []error
	if pm.context != nil {
		if err := pm.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close context: %w", err))
		}
	}
	if err := pm.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close browser: %w", err))
	}
	if err := pm.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop playwright: %w", err))
	}
	return errors.Join(errs...)
}
