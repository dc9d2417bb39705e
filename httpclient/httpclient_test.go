package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/trace"
)

func TestNewRequestJoinsPathAndQuery(t *testing.T) {
	c := NewBaseClient("https://api.example.com/base")

	q := url.Values{}
	q.Set("format", "json")
	req, err := c.NewRequest(context.Background(), http.MethodGet, "/v2/items", q, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/base/v2/items?format=json", req.URL.String())
}

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	c := NewBaseClient("https://api.example.com")

	_, err := c.NewRequest(context.Background(), http.MethodGet, "/v2/items?format=json", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relPath must not contain query string")
}

func TestRoundTripperPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
	}))
	defer srv.Close()

	ctx := trace.WithRequestAndSpan(context.Background(), "req-42", 0)
	c := NewBaseClient(srv.URL)
	req, err := c.NewRequest(ctx, http.MethodGet, "/ping", nil, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "1", gotSpanID, "first outbound call takes span 1")
}

func TestRoundTripperGeneratesIDsOutsideMiddleware(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	req, err := c.NewRequest(context.Background(), http.MethodGet, "/ping", nil, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, gotRequestID)
}
