package browser

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"social-pulse/logger"
	"social-pulse/models"
)

// Scraper is the browser-automation source adapter. It borrows workers from
// an injected Pool; it never owns or tears the pool down itself.
type Scraper struct {
	pool *Pool
}

func NewScraper(pool *Pool) *Scraper {
	return &Scraper{pool: pool}
}

func (s *Scraper) Kind() models.SourceKind { return models.SourceBrowser }

// Fetch renders one live-search page and extracts whatever posts the page
// yields. A render or extraction failure is recoverable: the adapter logs it
// and returns the partial (possibly empty) result instead of failing the run.
func (s *Scraper) Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error) {
	searchURL := SearchURL(query, opts)

	html, err := s.pool.RenderHTML(ctx, searchURL, WaitForTweets)
	if err != nil {
		// 컨텍스트 취소는 전파하고, 그 외 렌더 실패는 부분 결과(빈 목록)로 처리한다.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WarnWithFields("browser scrape task failed, returning partial results", logger.Fields{
			"url":   searchURL,
			"error": err.Error(),
		})
		return []models.Post{}, nil
	}

	posts, err := ExtractPosts(html, opts.MaxItems)
	if err != nil {
		logger.WarnWithFields("browser extraction failed, returning partial results", logger.Fields{
			"url":   searchURL,
			"error": err.Error(),
		})
		return []models.Post{}, nil
	}
	return posts, nil
}

// SearchURL builds the X live-search URL for a structured query.
func SearchURL(query models.StructuredQuery, opts models.FetchOptions) string {
	var terms []string
	terms = append(terms, query.WordsAnd...)
	for _, h := range query.Hashtags {
		terms = append(terms, "#"+strings.TrimPrefix(h, "#"))
	}
	if len(query.WordsOr) > 0 {
		terms = append(terms, "("+strings.Join(query.WordsOr, " OR ")+")")
	}
	if opts.MinLikes > 0 {
		terms = append(terms, fmt.Sprintf("min_faves:%d", opts.MinLikes))
	}
	if opts.Language != "" {
		terms = append(terms, "lang:"+opts.Language)
	}
	if !opts.Since.IsZero() {
		terms = append(terms, "since:"+models.DateStr(opts.Since))
	}
	if !opts.Until.IsZero() {
		terms = append(terms, "until:"+models.DateStr(opts.Until))
	}

	q := url.Values{}
	q.Set("q", strings.Join(terms, " "))
	q.Set("src", "typed_query")
	q.Set("f", "live")
	return "https://x.com/search?" + q.Encode()
}

var statusIDPattern = regexp.MustCompile(`/status/(\d+)`)

// ExtractPosts pulls posts out of a rendered search page. An article that
// cannot be parsed is skipped; the rest still come back.
func ExtractPosts(html string, maxItems int) ([]models.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	doc.Find(TweetArticle).EachWithBreak(func(_ int, article *goquery.Selection) bool {
		if maxItems > 0 && len(posts) >= maxItems {
			return false
		}

		post, ok := parseArticle(article)
		if !ok {
			return true
		}
		posts = append(posts, post)
		return true
	})

	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func parseArticle(article *goquery.Selection) (models.Post, bool) {
	text := strings.TrimSpace(article.Find(TweetText).First().Text())

	href, _ := article.Find(TweetLink).First().Attr("href")
	m := statusIDPattern.FindStringSubmatch(href)
	if m == nil {
		// 상태 링크가 없는 article 은 광고/프로모션 블록일 가능성이 높다.
		return models.Post{}, false
	}
	id := m[1]

	var createdAt time.Time
	if datetime, ok := article.Find(TweetTimestamp).First().Attr("datetime"); ok {
		createdAt, _ = time.Parse(time.RFC3339, datetime)
	}

	authorID := ""
	if strings.HasPrefix(href, "/") {
		if idx := strings.Index(href[1:], "/"); idx > 0 {
			authorID = href[1 : idx+1]
		}
	}
	authorName := strings.TrimSpace(article.Find(TweetAuthor).Find("span").First().Text())

	return models.Post{
		ID:         id,
		Text:       text,
		CreatedAt:  createdAt,
		AuthorID:   authorID,
		AuthorName: authorName,
		URL:        "https://x.com" + href,
		Source:     models.SourceBrowser,
		Metrics: models.PostMetrics{
			LikeCount:   parseCount(article.Find(LikeCount).First().Text()),
			ReplyCount:  parseCount(article.Find(ReplyCount).First().Text()),
			RepostCount: parseCount(article.Find(RetweetCount).First().Text()),
		},
	}, true
}

// parseCount reads engagement counters as rendered ("1,234", "5.2K", "1M").
func parseCount(s string) int64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "M")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(f * float64(multiplier))
}
