package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newLimitedHandler(t *testing.T, perMinute int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	rl := NewRateLimiter(client, perMinute, zaptest.NewLogger(t))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return rl.Limit(next), s
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/research", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	h, _ := newLimitedHandler(t, 3)

	for i := 0; i < 3; i++ {
		rec := doRequest(h, "10.0.0.1:4000")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := doRequest(h, "10.0.0.1:4000")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiterCountsPerIP(t *testing.T) {
	h, _ := newLimitedHandler(t, 1)

	require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:4000").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(h, "10.0.0.1:5000").Code,
		"the port must not be part of the client identity")
	require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.2:4000").Code)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	h, s := newLimitedHandler(t, 1)
	s.Close()

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:4000").Code)
	}
}

func TestRateLimiterDisabledWithoutRedis(t *testing.T) {
	rl := NewRateLimiter(nil, 10, zaptest.NewLogger(t))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rec := doRequest(rl.Limit(next), "10.0.0.1:4000")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
