// Package browser drives headless Chromium against live X search pages and
// extracts posts from the rendered DOM. This path is inherently fragile: it
// tracks the site's current page structure, not a stable API.
package browser

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"

	"social-pulse/logger"
)

const USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

const DefaultMaxWorkers = 2

// contentTimeout bounds the wait for search results to appear.
// settleDelay gives the page time to hydrate dynamic content after that.
const contentTimeout = 10 * time.Second
const settleDelay = 2 * time.Second

// Pool is an explicitly owned handle over a shared Chromium allocator.
// 프로세스당 하나를 만들어 진입점에서 주입하고, 서버 모드에서는 프로세스가
// 살아있는 동안 유지한다. Close 는 원샷 실행에서만 호출한다.
type Pool struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	sem         *semaphore.Weighted
}

// NewPool creates the allocator with at most maxWorkers concurrent page tasks.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = DefaultMaxWorkers
	}

	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		chromePath = "/usr/bin/chromium-browser" // Docker/Linux 기본
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.UserAgent(USER_AGENT),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Pool{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		sem:         semaphore.NewWeighted(int64(maxWorkers)),
	}
}

// RenderHTML navigates one worker to url, waits for waitSelector to appear
// (bounded), lets dynamic content settle, and returns the page HTML.
func (p *Pool) RenderHTML(ctx context.Context, url, waitSelector string) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.sem.Release(1)

	taskCtx, cancel := chromedp.NewContext(p.allocCtx)
	defer cancel()
	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, contentTimeout+settleDelay+30*time.Second)
	defer cancelTimeout()

	start := time.Now()
	var htmlContent string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(waitSelector, chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", err
	}

	logger.DebugWithFields("browser page rendered", logger.Fields{
		"url":      url,
		"duration": time.Since(start).String(),
		"bytes":    len(htmlContent),
	})
	return htmlContent, nil
}

// Close tears the allocator down. Must not be called while a long-running
// server may still dispatch page tasks.
func (p *Pool) Close() {
	p.allocCancel()
}
