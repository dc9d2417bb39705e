// Package apify runs the Scweet X/Twitter search actor on the Apify platform:
// submit a run, poll until it reaches a terminal status, then read the result
// items back from the run's default dataset.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"social-pulse/config"
	"social-pulse/httpclient"
	"social-pulse/logger"
	"social-pulse/models"
	"social-pulse/sources"
)

const defaultBaseURL = "https://api.apify.com"
const defaultPollInterval = 5 * time.Second

// ErrRunFailed 는 액터 런이 SUCCEEDED 이외의 종료 상태로 끝났을 때 반환된다.
var ErrRunFailed = errors.New("apify actor run failed")

// runInput is the Scweet actor input document.
type runInput struct {
	WordsAnd []string `json:"words_and"`
	WordsOr  []string `json:"words_or"`
	Hashtag  []string `json:"hashtag"`
	MinLikes *int     `json:"min_likes,omitempty"`
	Lang     string   `json:"lang"`
	Since    string   `json:"since"`
	Until    string   `json:"until"`
	Type     string   `json:"type"`
	MaxItems string   `json:"maxItems"`
}

// runData is the subset of the actor-run resource we care about.
type runData struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

type runEnvelope struct {
	Data runData `json:"data"`
}

// scweetItem is one raw dataset item as the Scweet actor emits it.
type scweetItem struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Timestamp      string `json:"timestamp"`
	UserID         string `json:"userId"`
	UserScreenName string `json:"userScreenName"`
	Likes          int64  `json:"likes"`
	Replies        int64  `json:"replies"`
	Retweets       int64  `json:"retweets"`
	Quotes         int64  `json:"quotes"`
	URL            string `json:"url"`
}

// Client is the delegated-scrape source adapter.
type Client struct {
	base         *httpclient.BaseClient
	token        string
	actorID      string
	pollInterval time.Duration
}

// New creates the adapter. A missing APIFY_TOKEN fails fast here so a
// misconfigured process never reaches the network.
func New() (*Client, error) {
	token := os.Getenv("APIFY_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("%w: APIFY_TOKEN", sources.ErrMissingCredential)
	}

	cfg := config.GetConfig().Apify
	pollInterval := defaultPollInterval
	if cfg.PollIntervalMs > 0 {
		pollInterval = time.Duration(cfg.PollIntervalMs) * time.Millisecond
	}

	return &Client{
		base:         httpclient.NewBaseClient(defaultBaseURL),
		token:        token,
		actorID:      cfg.ActorID,
		pollInterval: pollInterval,
	}, nil
}

// newWithBase is used by tests to point the client at a fake server.
func newWithBase(baseURL, token, actorID string, pollInterval time.Duration) *Client {
	return &Client{
		base:         httpclient.NewBaseClient(baseURL),
		token:        token,
		actorID:      actorID,
		pollInterval: pollInterval,
	}
}

func (c *Client) Kind() models.SourceKind { return models.SourceApify }

// Fetch submits one actor run and blocks until it reaches a terminal status.
// 폴링에는 호출자 컨텍스트 외의 자체 타임아웃이 없다. 런이 끝날 때까지 대기한다.
func (c *Client) Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error) {
	query.Normalize()

	input := runInput{
		WordsAnd: query.WordsAnd,
		WordsOr:  query.WordsOr,
		Hashtag:  query.Hashtags,
		Lang:     opts.Language,
		Since:    models.DateStr(opts.Since),
		Until:    models.DateStr(opts.Until),
		Type:     "Latest",
		MaxItems: strconv.Itoa(opts.MaxItems),
	}
	if opts.MinLikes > 0 {
		minLikes := opts.MinLikes
		input.MinLikes = &minLikes
	}

	run, err := c.startRun(ctx, input)
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("apify run started", logger.Fields{
		"run_id": run.ID,
		"actor":  c.actorID,
	})

	run, err = c.waitForRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	if run.Status != "SUCCEEDED" {
		return nil, fmt.Errorf("%w: status %s", ErrRunFailed, run.Status)
	}

	items, err := c.datasetItems(ctx, run.DefaultDatasetID)
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, normalizeItem(item))
	}
	logger.InfoWithFields("apify run succeeded", logger.Fields{
		"run_id": run.ID,
		"items":  len(posts),
	})
	return posts, nil
}

func (c *Client) startRun(ctx context.Context, input runInput) (runData, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return runData{}, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/v2/acts/"+c.actorID+"/runs", nil, bytes.NewReader(body))
	if err != nil {
		return runData{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	var env runEnvelope
	if err := c.doJSON(req, &env); err != nil {
		return runData{}, fmt.Errorf("apify: start run: %w", err)
	}
	return env.Data, nil
}

// waitForRun polls the run resource until a terminal status is reported.
func (c *Client) waitForRun(ctx context.Context, runID string) (runData, error) {
	for {
		req, err := c.base.NewRequest(ctx, http.MethodGet, "/v2/actor-runs/"+runID, nil, nil)
		if err != nil {
			return runData{}, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)

		var env runEnvelope
		if err := c.doJSON(req, &env); err != nil {
			return runData{}, fmt.Errorf("apify: poll run %s: %w", runID, err)
		}

		switch env.Data.Status {
		case "SUCCEEDED", "FAILED", "ABORTED", "TIMED-OUT":
			return env.Data, nil
		}

		select {
		case <-time.After(c.pollInterval):
		case <-ctx.Done():
			return runData{}, ctx.Err()
		}
	}
}

func (c *Client) datasetItems(ctx context.Context, datasetID string) ([]scweetItem, error) {
	q := url.Values{}
	q.Set("format", "json")

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/v2/datasets/"+datasetID+"/items", q, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	var items []scweetItem
	if err := c.doJSON(req, &items); err != nil {
		return nil, fmt.Errorf("apify: read dataset %s: %w", datasetID, err)
	}
	return items, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// normalizeItem maps a raw Scweet item onto the shared Post shape.
// 누락된 수치 필드는 0, 누락된 텍스트는 빈 문자열로 남는다.
func normalizeItem(item scweetItem) models.Post {
	createdAt, _ := time.Parse(time.RFC3339, item.Timestamp)
	return models.Post{
		ID:         item.ID,
		Text:       item.Text,
		CreatedAt:  createdAt,
		AuthorID:   item.UserID,
		AuthorName: item.UserScreenName,
		URL:        item.URL,
		Source:     models.SourceApify,
		Metrics: models.PostMetrics{
			LikeCount:   item.Likes,
			ReplyCount:  item.Replies,
			RepostCount: item.Retweets,
			QuoteCount:  item.Quotes,
		},
	}
}
