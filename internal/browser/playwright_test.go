package browser

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"glassdoor-scraper/utils"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//helper start a real headless browser, skip when the driver is not installed
func setupManager(t *testing.T, opts ...Options) *PlaywrightManager {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	o := Options{Headless: true, NavTimeout: 5 * time.Second}
	if len(opts) > 0 {
		o = opts[0]
	}
	pm, err := NewPlaywright(context.Background(), o)
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	t.Cleanup(func() { pm.Close() })
	return pm
}

func TestPlaywrightManager_Load(t *testing.T) {
	pm := setupManager(t)
	browserCtx, err := pm.NewContext(nil)
	require.NoError(t, err)

	mockHTML := `<html><body><a class="JobCard_jobTitle__rbjTE" href="/job-listing/a-JV_1.htm">Go Developer</a></body></html>`

	//route all requests back to the mock page
	require.NoError(t, browserCtx.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        mockHTML,
		})
	}))

	content, err := pm.Load(context.Background(), "https://www.glassdoor.com/Job/test.htm")
	require.NoError(t, err)
	assert.Contains(t, string(content), "JobCard_jobTitle__rbjTE")
	assert.Empty(t, browserCtx.Pages(), "pages are closed after load")
}

func TestPlaywrightManager_LoadResultsScrolls(t *testing.T) {
	pm := setupManager(t, Options{Headless: true, NavTimeout: 5 * time.Second, ScrollResults: true})
	browserCtx, err := pm.NewContext(nil)
	require.NoError(t, err)

	//a card is appended once the page scrolls
	lazyHTML := `<html><body style="height:5000px"><script>
window.addEventListener('scroll', () => {
  if (!document.querySelector('.lazy-card')) {
    const card = document.createElement('div');
    card.className = 'lazy-card';
    document.body.appendChild(card);
  }
});
</script></body></html>`
	require.NoError(t, browserCtx.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        lazyHTML,
		})
	}))

	detail, err := pm.Load(context.Background(), "https://www.glassdoor.com/job-listing/a-JV_1.htm")
	require.NoError(t, err)
	assert.NotContains(t, string(detail), `<div class="lazy-card"></div>`)

	results, err := pm.LoadResults(context.Background(), "https://www.glassdoor.com/Job/test.htm")
	require.NoError(t, err)
	assert.Contains(t, string(results), `<div class="lazy-card"></div>`)
}

func TestPlaywrightManager_LoadCancelled(t *testing.T) {
	pm := setupManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pm.Load(ctx, "https://www.glassdoor.com/")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlaywrightManager_NewContextTwice(t *testing.T) {
	pm := setupManager(t)

	_, err := pm.NewContext(nil)
	require.NoError(t, err)
	_, err = pm.NewContext(nil)
	assert.Error(t, err)
}

func TestPlaywrightManager_RecordFailure(t *testing.T) {
	dir := t.TempDir()
	shots, err := utils.NewScreenShotDebugger(dir)
	require.NoError(t, err)
	pm := setupManager(t, Options{Headless: true, NavTimeout: 5 * time.Second, Screenshots: shots})
	_, err = pm.NewContext(nil)
	require.NoError(t, err)

	pm.RecordFailure("https://www.glassdoor.com/job-listing/a-JV_1.htm", []byte(`<html><body><h1>Changed markup</h1></body></html>`))

	files, err := filepath.Glob(filepath.Join(dir, "parse-failed_*.png"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	info, err := os.Stat(files[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlaywrightManager_RecordFailureWithoutScreenshots(t *testing.T) {
	pm := setupManager(t)
	_, err := pm.NewContext(nil)
	require.NoError(t, err)

	//no-op when screenshots are disabled
	pm.RecordFailure("https://www.glassdoor.com/", []byte(`<html></html>`))
}
