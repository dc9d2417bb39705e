// Package reddit fetches posts through Reddit's public search RSS feed.
// No credential is required; engagement metrics are not exposed by RSS and
// stay at zero in the normalized posts.
package reddit

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"social-pulse/models"
)

const defaultBaseURL = "https://www.reddit.com"

// Reddit 는 RSS 요청의 UA 가 기본값이면 차단하므로 반드시 식별 가능한 UA 를 보낸다.
const userAgent = "social-pulse/1.0 (topic analysis; rss reader)"

type Client struct {
	baseURL string
	parser  *gofeed.Parser
}

func New() *Client {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	return &Client{
		baseURL: defaultBaseURL,
		parser:  fp,
	}
}

// newWithBase is used by tests to point the client at a fake feed server.
func newWithBase(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

func (c *Client) Kind() models.SourceKind { return models.SourceReddit }

func (c *Client) Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error) {
	q := url.Values{}
	q.Set("q", searchTerms(query))
	q.Set("sort", "new")

	feedURL := c.baseURL + "/search.rss?" + q.Encode()
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("reddit search feed: %w", err)
	}

	posts := make([]models.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if opts.MaxItems > 0 && len(posts) >= opts.MaxItems {
			break
		}
		posts = append(posts, normalizeItem(item))
	}
	return posts, nil
}

func searchTerms(query models.StructuredQuery) string {
	terms := append([]string{}, query.WordsAnd...)
	if len(terms) == 0 {
		terms = query.WordsOr
	}
	return strings.Join(terms, " ")
}

func normalizeItem(item *gofeed.Item) models.Post {
	post := models.Post{
		ID:     item.GUID,
		Text:   item.Title,
		URL:    item.Link,
		Source: models.SourceReddit,
	}
	if post.ID == "" {
		post.ID = item.Link
	}
	if item.PublishedParsed != nil {
		post.CreatedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		post.CreatedAt = *item.UpdatedParsed
	}
	if item.Author != nil {
		post.AuthorID = item.Author.Name
	}
	return post
}
