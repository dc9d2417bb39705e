// Package xsearch fetches posts through the official X API v2 recent-search
// endpoint. One paginated call per fetch; no backoff or retry on rate limits.
package xsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"social-pulse/httpclient"
	"social-pulse/logger"
	"social-pulse/models"
	"social-pulse/sources"
)

const defaultBaseURL = "https://api.twitter.com"

// ErrRateLimited 는 429 응답에 대해 반환된다. 재시도는 구현하지 않으며
// 요청 전체의 실패로 전파된다.
var ErrRateLimited = errors.New("x api rate limit exceeded")

type apiTweet struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	CreatedAt     string `json:"created_at"`
	AuthorID      string `json:"author_id"`
	PublicMetrics struct {
		RetweetCount int64 `json:"retweet_count"`
		ReplyCount   int64 `json:"reply_count"`
		LikeCount    int64 `json:"like_count"`
		QuoteCount   int64 `json:"quote_count"`
	} `json:"public_metrics"`
}

type apiUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type searchResponse struct {
	Data     []apiTweet `json:"data"`
	Includes struct {
		Users []apiUser `json:"users"`
	} `json:"includes"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}

// Client is the official-API source adapter.
type Client struct {
	base  *httpclient.BaseClient
	token string
}

// New creates the adapter. A missing X_BEARER_TOKEN fails fast here.
func New() (*Client, error) {
	token := os.Getenv("X_BEARER_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("%w: X_BEARER_TOKEN", sources.ErrMissingCredential)
	}
	return &Client{
		base:  httpclient.NewBaseClient(defaultBaseURL),
		token: token,
	}, nil
}

func newWithBase(baseURL, token string) *Client {
	return &Client{
		base:  httpclient.NewBaseClient(baseURL),
		token: token,
	}
}

func (c *Client) Kind() models.SourceKind { return models.SourceXAPI }

func (c *Client) Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error) {
	q := url.Values{}
	q.Set("query", BuildQuery(query, opts.Language))
	q.Set("max_results", strconv.Itoa(clampResults(opts.MaxItems)))
	q.Set("tweet.fields", "created_at,public_metrics")
	q.Set("user.fields", "username,public_metrics")
	q.Set("expansions", "author_id")

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/2/tweets/search/recent", q, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("x api search: %w", err)
	}
	defer resp.Body.Close()

	// 엔드포인트가 노출하는 레이트리밋 메타데이터는 로그로만 남긴다.
	if remaining := resp.Header.Get("x-rate-limit-remaining"); remaining != "" {
		logger.DebugWithFields("x api rate limit", logger.Fields{
			"remaining": remaining,
			"limit":     resp.Header.Get("x-rate-limit-limit"),
			"reset":     resp.Header.Get("x-rate-limit-reset"),
		})
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: resets at %s", ErrRateLimited, resetTime(resp.Header.Get("x-rate-limit-reset")))
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("x api search: unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("x api search: decode response: %w", err)
	}

	users := make(map[string]apiUser, len(body.Includes.Users))
	for _, u := range body.Includes.Users {
		users[u.ID] = u
	}

	posts := make([]models.Post, 0, len(body.Data))
	for _, t := range body.Data {
		createdAt, _ := time.Parse(time.RFC3339, t.CreatedAt)
		posts = append(posts, models.Post{
			ID:         t.ID,
			Text:       t.Text,
			CreatedAt:  createdAt,
			AuthorID:   t.AuthorID,
			AuthorName: users[t.AuthorID].Username,
			Source:     models.SourceXAPI,
			Metrics: models.PostMetrics{
				LikeCount:   t.PublicMetrics.LikeCount,
				ReplyCount:  t.PublicMetrics.ReplyCount,
				RepostCount: t.PublicMetrics.RetweetCount,
				QuoteCount:  t.PublicMetrics.QuoteCount,
			},
		})
	}
	return posts, nil
}

// BuildQuery translates a StructuredQuery into the X search syntax:
// required terms joined by spaces (implicit AND), optional terms and
// hashtags grouped as OR alternatives.
func BuildQuery(query models.StructuredQuery, language string) string {
	var parts []string
	parts = append(parts, query.WordsAnd...)

	var alternatives []string
	alternatives = append(alternatives, query.WordsOr...)
	for _, h := range query.Hashtags {
		alternatives = append(alternatives, "#"+strings.TrimPrefix(h, "#"))
	}
	if len(alternatives) == 1 {
		parts = append(parts, alternatives[0])
	} else if len(alternatives) > 1 {
		parts = append(parts, "("+strings.Join(alternatives, " OR ")+")")
	}

	if language != "" {
		parts = append(parts, "lang:"+language)
	}
	return strings.Join(parts, " ")
}

// clampResults keeps max_results inside the endpoint's 10..100 window.
func clampResults(n int) int {
	if n < 10 {
		return 10
	}
	if n > 100 {
		return 100
	}
	return n
}

func resetTime(epoch string) string {
	sec, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return "unknown"
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
