package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	respcache "lawfirm-cms/pkg/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

func TestRedisClientHealthCheck(t *testing.T) {
	mr, rc := newTestRedis(t)
	require.NoError(t, rc.Connect(context.Background()))
	require.NoError(t, rc.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, rc.HealthCheck(context.Background()))
}

func TestRedisStorageGetSetRemove(t *testing.T) {
	_, rc := newTestRedis(t)
	s := NewRedisStorage(rc.Client, 0)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "cms_cache_a", "1"))
	val, ok, err := s.Get(ctx, "cms_cache_a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", val)

	require.NoError(t, s.Remove(ctx, "cms_cache_a"))
	_, ok, err = s.Get(ctx, "cms_cache_a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStorageKeysByPrefix(t *testing.T) {
	_, rc := newTestRedis(t)
	s := NewRedisStorage(rc.Client, 0)
	ctx := context.Background()

	for _, k := range []string{"cms_cache_1", "cms_cache_2", "other_1"} {
		require.NoError(t, s.Set(ctx, k, "{}"))
	}

	keys, err := s.Keys(ctx, "cms_cache_")
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"cms_cache_1", "cms_cache_2"}, keys)
}

func TestRedisStorageExpiry(t *testing.T) {
	mr, rc := newTestRedis(t)
	s := NewRedisStorage(rc.Client, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResponseCacheOverRedis(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"docs":[],"totalDocs":0}`))
	}))
	defer srv.Close()

	_, rc := newTestRedis(t)
	storage := NewRedisStorage(rc.Client, 0)

	// Two caches over one Redis behave like two processes sharing entries.
	first := respcache.NewResponseCache(storage)
	second := respcache.NewResponseCache(storage)

	_, err := first.FetchWithCache(context.Background(), srv.URL+"/api/cms/profiles", respcache.Options{})
	require.NoError(t, err)
	_, err = second.FetchWithCache(context.Background(), srv.URL+"/api/cms/profiles", respcache.Options{})
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
}
