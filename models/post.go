package models

import "time"

// SourceKind identifies one post origin.
type SourceKind string

const (
	SourceFixture SourceKind = "fixture"
	SourceXAPI    SourceKind = "x_api"
	SourceApify   SourceKind = "apify"
	SourceBrowser SourceKind = "browser"
	SourceReddit  SourceKind = "reddit"

	// Declared but not wired to an adapter yet. The aggregator skips these
	// with a log line instead of failing the request.
	SourceYouTube SourceKind = "youtube"
)

// PostMetrics holds engagement counters. Missing values stay at zero.
type PostMetrics struct {
	LikeCount   int64 `bson:"like_count" json:"like_count"`
	ReplyCount  int64 `bson:"reply_count" json:"reply_count"`
	RepostCount int64 `bson:"repost_count" json:"repost_count"`
	QuoteCount  int64 `bson:"quote_count" json:"quote_count"`
}

// Post is the normalized social content unit every adapter must return.
// Adapters populate what their origin exposes; callers never see
// origin-specific shapes.
type Post struct {
	ID         string      `bson:"post_id" json:"id"`
	Text       string      `bson:"text" json:"text"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
	AuthorID   string      `bson:"author_id" json:"author_id"`
	AuthorName string      `bson:"author_name,omitempty" json:"author_name,omitempty"`
	URL        string      `bson:"url,omitempty" json:"url,omitempty"`
	Source     SourceKind  `bson:"source" json:"source"`
	Metrics    PostMetrics `bson:"metrics" json:"metrics"`
}
