// ABOUTME: Title preview service looking up page titles for exported result links
// ABOUTME: Uses colly to read og:title or the document title, caching results for a day

package preview

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly"

	"snapfind-api/core/interfaces"
)

const (
	defaultUserAgent   = "Mozilla/5.0 (compatible; snapfind-preview/1.0)"
	defaultConcurrency = 10
	titleCacheTTL      = 24 * time.Hour
	titleCachePrefix   = "title:"
)

// Config tunes the title fetcher
type Config struct {
	UserAgent   string
	Timeout     time.Duration
	Concurrency int
}

// TitleService implements interfaces.TitleResolver
type TitleService struct {
	deps   interfaces.Dependencies
	config Config
}

// NewTitleService creates a title service, filling unset config fields
func NewTitleService(deps interfaces.Dependencies, config Config) *TitleService {
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Concurrency <= 0 {
		config.Concurrency = defaultConcurrency
	}
	return &TitleService{deps: deps, config: config}
}

// Title returns the page title of targetURL, or "" when none could be read
func (s *TitleService) Title(ctx context.Context, targetURL string) string {
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, titleCachePrefix+targetURL); err == nil {
			return string(data)
		}
	}
	if ctx.Err() != nil {
		return ""
	}

	title := s.fetchTitle(targetURL)

	if s.deps.Cache != nil && title != "" {
		_ = s.deps.Cache.Set(ctx, titleCachePrefix+targetURL, []byte(title), titleCacheTTL)
	}
	return title
}

// Titles looks up titles concurrently. URLs without a title are left out.
func (s *TitleService) Titles(ctx context.Context, urls []string) map[string]string {
	titles := make(map[string]string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, s.config.Concurrency)

	for _, u := range urls {
		wg.Add(1)
		go func(targetURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if title := s.Title(ctx, targetURL); title != "" {
				mu.Lock()
				titles[targetURL] = title
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return titles
}

func (s *TitleService) fetchTitle(targetURL string) string {
	if targetURL == "" {
		return ""
	}

	c := colly.NewCollector(
		colly.UserAgent(s.config.UserAgent),
		colly.MaxBodySize(2*1024*1024),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(s.config.Timeout)

	var ogTitle, docTitle string
	c.OnHTML("meta[property='og:title']", func(e *colly.HTMLElement) {
		if ogTitle == "" {
			ogTitle = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML("head", func(e *colly.HTMLElement) {
		if docTitle == "" {
			docTitle = strings.TrimSpace(e.DOM.Find("title").First().Text())
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		s.logDebug("Error visiting URL for title", map[string]interface{}{
			"url":    targetURL,
			"error":  err.Error(),
			"status": r.StatusCode,
		})
	})

	if err := c.Visit(targetURL); err != nil {
		s.logDebug("Failed to visit URL for title", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return ""
	}

	if ogTitle != "" {
		return ogTitle
	}
	return docTitle
}

func (s *TitleService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
