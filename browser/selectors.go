package browser

// X.com DOM selectors.
// These are isolated here because X changes their DOM frequently.
// Update these when scraping breaks.
const (
	TweetArticle   = `article[data-testid="tweet"]`
	TweetText      = `[data-testid="tweetText"]`
	TweetAuthor    = `[data-testid="User-Name"]`
	TweetTimestamp = `time`
	TweetLink      = `a[href*="/status/"]`

	ReplyCount   = `[data-testid="reply"]`
	RetweetCount = `[data-testid="retweet"]`
	LikeCount    = `[data-testid="like"]`
)

// WaitForTweets is the marker whose appearance means results have loaded.
const WaitForTweets = "article"
