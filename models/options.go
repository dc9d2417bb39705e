package models

import "time"

// DefaultSince 는 since 미지정 시 사용하는 고정 기준일이다.
var DefaultSince = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

const DefaultMaxItems = 20
const DefaultLanguage = "en"

// FetchOptions parameterizes one fetch across all source adapters.
type FetchOptions struct {
	Since    time.Time `json:"since"`
	Until    time.Time `json:"until"`
	MaxItems int       `json:"max_items"`
	MinLikes int       `json:"min_likes,omitempty"`
	Language string    `json:"language"`
}

// Normalize applies defaults for absent fields and returns the effective options.
func (o FetchOptions) Normalize(now time.Time) FetchOptions {
	if o.Since.IsZero() {
		o.Since = DefaultSince
	}
	if o.Until.IsZero() {
		o.Until = now.UTC().Truncate(24 * time.Hour)
	}
	if o.MaxItems < 1 {
		o.MaxItems = DefaultMaxItems
	}
	if o.MinLikes < 0 {
		o.MinLikes = 0
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	return o
}

// DateStr formats a time as the YYYY-MM-DD form the scrape boundaries expect.
func DateStr(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
