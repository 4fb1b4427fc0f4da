package renderer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/workspace"
)

// BrowserDriver owns the shared Playwright instance and browser process.
// Pages are created per pane; the driver is started on first use so builds
// with no browser panes never launch a browser.
type BrowserDriver struct {
	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewBrowserDriver creates an unstarted driver.
func NewBrowserDriver() *BrowserDriver {
	return &BrowserDriver{}
}

func (d *BrowserDriver) ensure() error {
	if d.browser != nil {
		return nil
	}

	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("launch browser: %w", err)
	}

	d.pw = pw
	d.browser = browser
	return nil
}

// NewPage opens a page sized to the slot and navigates it.
func (d *BrowserDriver) NewPage(pageURL string, width, height int) (playwright.Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensure(); err != nil {
		return nil, err
	}

	opts := playwright.BrowserNewContextOptions{}
	if width > 0 && height > 0 {
		opts.Viewport = &playwright.Size{Width: width, Height: height}
	}
	browserCtx, err := d.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	if _, err := page.Goto(pageURL); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("navigate %s: %w", pageURL, err)
	}
	return page, nil
}

// Close stops the browser and the Playwright runtime.
func (d *BrowserDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	if d.browser != nil {
		err = d.browser.Close()
		d.browser = nil
	}
	if d.pw != nil {
		if stopErr := d.pw.Stop(); err == nil {
			err = stopErr
		}
		d.pw = nil
	}
	return err
}

// BrowserRenderer renders browser panes as embedded pages.
type BrowserRenderer struct {
	driver *BrowserDriver
	logger zerolog.Logger
}

// NewBrowserRenderer creates a browser renderer backed by the given driver.
func NewBrowserRenderer(driver *BrowserDriver, logger zerolog.Logger) *BrowserRenderer {
	return &BrowserRenderer{
		driver: driver,
		logger: logger.With().Str("renderer", "browser").Logger(),
	}
}

// Render produces page content for the pane. A browser pane without a URL
// yields a placeholder.
func (r *BrowserRenderer) Render(pane entity.PaneSpec, _ *entity.Scenario) Content {
	if pane.ContentRef == "" {
		r.logger.Warn().Int("pane", pane.Index).Msg("browser pane has no URL")
		return NewPlaceholder(pane, "no page URL")
	}
	return &BrowserContent{pane: pane, url: pane.ContentRef, driver: r.driver, logger: r.logger}
}

// BrowserContent is an embedded page bound to one panel.
type BrowserContent struct {
	failable
	pane   entity.PaneSpec
	url    string
	driver *BrowserDriver
	logger zerolog.Logger

	mu   sync.Mutex
	page playwright.Page
}

func (c *BrowserContent) Kind() string  { return string(entity.PaneBrowser) }
func (c *BrowserContent) Title() string { return c.pane.Title }

// URL returns the page URL this content loads.
func (c *BrowserContent) URL() string { return c.url }

// Connect opens the page sized to the slot.
func (c *BrowserContent) Connect(ctx context.Context, slot workspace.Rect) error {
	if err := ctx.Err(); err != nil {
		c.setErr(err)
		return err
	}

	page, err := c.driver.NewPage(c.url, slot.Width, slot.Height)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", c.url).Msg("page load failed")
		c.setErr(err)
		return err
	}

	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return nil
}

// Close closes the page if one was opened.
func (c *BrowserContent) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page == nil {
		return nil
	}
	err := c.page.Close()
	c.page = nil
	return err
}
