package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"social-pulse/models"
)

// fixtureDelay emulates network latency so demos behave like a real adapter.
const fixtureDelay = 50 * time.Millisecond

// fixtureTemplates mirror the synthetic dataset used for offline demos.
// The query text is echoed into each post body and hashtag.
var fixtureTemplates = []struct {
	id      string
	text    string
	author  string
	metrics models.PostMetrics
}{
	{"1", "Just launched our new marketing campaign! The vibe is incredible. #Marketing #%s", "user1",
		models.PostMetrics{LikeCount: 156, ReplyCount: 12, RepostCount: 42, QuoteCount: 5}},
	{"2", "Excited to share our latest case study on social media engagement. The results are amazing! Check out how we increased engagement by 300%% #SocialMedia #%s", "user2",
		models.PostMetrics{LikeCount: 95, ReplyCount: 8, RepostCount: 28, QuoteCount: 3}},
	{"3", "Breaking down the latest trends in digital marketing. Key takeaway: authenticity wins! #DigitalMarketing #%s", "user3",
		models.PostMetrics{LikeCount: 210, ReplyCount: 15, RepostCount: 65, QuoteCount: 8}},
	{"4", "Our team just completed another successful campaign. The client feedback is phenomenal! #Success #%s", "user4",
		models.PostMetrics{LikeCount: 127, ReplyCount: 9, RepostCount: 33, QuoteCount: 4}},
	{"5", "Innovation in marketing never stops. Here's what we learned from our latest A/B testing. Thread 🧵 #MarketingTips #%s", "user5",
		models.PostMetrics{LikeCount: 345, ReplyCount: 24, RepostCount: 89, QuoteCount: 12}},
}

// Fixture is the deterministic offline adapter used for demos and tests.
// Post IDs, texts and metrics are stable across calls; only timestamps are
// computed relative to now.
type Fixture struct {
	now func() time.Time
}

func NewFixture() *Fixture {
	return &Fixture{now: time.Now}
}

// NewFixtureAt pins the clock, for tests that compare timestamps.
func NewFixtureAt(now func() time.Time) *Fixture {
	return &Fixture{now: now}
}

func (f *Fixture) Kind() models.SourceKind { return models.SourceFixture }

func (f *Fixture) Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error) {
	select {
	case <-time.After(fixtureDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tag := queryTag(query)
	now := f.now()

	posts := make([]models.Post, 0, len(fixtureTemplates))
	for i, tpl := range fixtureTemplates {
		posts = append(posts, models.Post{
			ID:        tpl.id,
			Text:      fmt.Sprintf(tpl.text, tag),
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			AuthorID:  tpl.author,
			Source:    models.SourceFixture,
			Metrics:   tpl.metrics,
		})
	}
	if opts.MaxItems > 0 && len(posts) > opts.MaxItems {
		posts = posts[:opts.MaxItems]
	}
	return posts, nil
}

// queryTag collapses the first required term into a hashtag-safe token.
func queryTag(query models.StructuredQuery) string {
	term := "topic"
	if len(query.WordsAnd) > 0 && query.WordsAnd[0] != "" {
		term = query.WordsAnd[0]
	}
	return strings.ReplaceAll(term, " ", "")
}
