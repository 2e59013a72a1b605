package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "fti.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := tempCache(t)

	_, ok, err := c.Get("https://example.com/a", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put("https://example.com/a", []byte("one")))
	require.NoError(t, c.Put("https://example.com/a", []byte("two")))

	body, ok, err := c.Get("https://example.com/a", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", string(body))
}

func TestCache_Expiry(t *testing.T) {
	c := tempCache(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	require.NoError(t, c.Put("u", []byte("body")))

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, ok, err := c.Get("u", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "entry older than max age")

	_, ok, err = c.Get("u", 3*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = c.Get("u", 0)
	require.NoError(t, err)
	assert.True(t, ok, "zero max age keeps entries forever")
}

func TestClient_GetSetsHeadersAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"country":"France","status":"Pilot"}]`))
	}))
	defer srv.Close()

	c := New(Options{HTTPClient: srv.Client(), Cache: tempCache(t), UserAgent: "test-agent"})

	for i := 0; i < 3; i++ {
		body, err := c.Get(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, string(body), "France")
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_NoCacheFetchesEveryTime(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(Options{HTTPClient: srv.Client(), RPS: 1000, Burst: 5})
	for i := 0; i < 2; i++ {
		_, err := c.Get(context.Background(), srv.URL)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_ErrorStatusNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	cache := tempCache(t)
	c := New(Options{HTTPClient: srv.Client(), Cache: cache})

	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")

	_, ok, err := cache.Get(srv.URL, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(Options{HTTPClient: srv.Client()})
	_, err := c.Get(ctx, srv.URL)
	assert.Error(t, err)
}
